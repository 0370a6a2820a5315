// Package redisloader puts a redis read-through cache in front of a
// loader.Loader. Only successful results are stored; failures always go back
// to the backing loader.
package redisloader

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
	"github.com/sysulq/hresult-go"
	"github.com/sysulq/hresult-go/loader"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source redisloader.go -destination mocks/mocks.go -package mocks
type ClientInterface interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	Pipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

// pipelinerInterface is the part of redis.Pipeliner used to store results
type pipelinerInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Loader is a loader.Loader backed by redis
type Loader[K comparable, V any] struct {
	redisClient ClientInterface
	loader      loader.Loader[K, V]
	opts        option
	group       singleflight.Group
}

// option defines the options for the Loader
type option struct {
	// Expiration is the expiration time for the redis cache
	// Default is 0, which means no expiration
	Expiration time.Duration
	// KeyFunc is the function to convert the key to a string
	KeyFunc func(any) string
	// MarshalFunc is the function to marshal the value
	// Default is json.Marshal
	MarshalFunc func(any) ([]byte, error)
	// UnmarshalFunc is the function to unmarshal the value
	// Default is json.Unmarshal
	UnmarshalFunc func([]byte, any) error
	// Logger reports redis failures, default is slog.Default()
	Logger *slog.Logger
}

// Option configures a Loader
type Option func(*option)

func WithExpiration(expiration time.Duration) Option {
	return func(o *option) {
		o.Expiration = expiration
	}
}

func WithKeyFunc(keyFunc func(any) string) Option {
	return func(o *option) {
		o.KeyFunc = keyFunc
	}
}

func WithMarshalFunc(marshalFunc func(any) ([]byte, error)) Option {
	return func(o *option) {
		o.MarshalFunc = marshalFunc
	}
}

func WithUnmarshalFunc(unmarshalFunc func([]byte, any) error) Option {
	return func(o *option) {
		o.UnmarshalFunc = unmarshalFunc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

// New creates a new redis backed Loader. Pass its Load method to loader.New
// to get batching and an in-process cache on top.
func New[K comparable, V any](client ClientInterface, backing loader.Loader[K, V], options ...Option) *Loader[K, V] {
	opts := option{}
	for _, option := range options {
		option(&opts)
	}

	if opts.MarshalFunc == nil {
		opts.MarshalFunc = json.Marshal
	}
	if opts.UnmarshalFunc == nil {
		opts.UnmarshalFunc = json.Unmarshal
	}
	if opts.KeyFunc == nil {
		opts.KeyFunc = func(k any) string {
			return cast.ToString(k)
		}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Loader[K, V]{
		redisClient: client,
		loader:      backing,
		opts:        opts,
	}
}

// Load implements loader.Loader
func (dl *Loader[K, V]) Load(ctx context.Context, keys []K) []hresult.Of[V] {
	resultMap := make(map[K]hresult.Of[V], len(keys))
	if len(keys) == 0 {
		return mapToSlice(keys, resultMap)
	}

	missingKeys := make([]K, 0, len(keys))

	newKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		newKeys = append(newKeys, dl.opts.KeyFunc(key))
	}

	// 1. try to get all keys from redis
	redisValues, err := dl.redisClient.MGet(ctx, newKeys...).Result()
	if err != nil {
		// if there is an error, just load all keys from the loader
		dl.opts.Logger.WarnContext(ctx, "redis mget failed", slog.Any("error", err), slog.Int("keys", len(keys)))
		loadData := dl.load(ctx, keys)
		for i, key := range keys {
			resultMap[key] = loadData[i]
		}
		return mapToSlice(keys, resultMap)
	}

	// 2. process the values from redis
	for i, key := range keys {
		if len(redisValues) <= i || redisValues[i] == nil {
			missingKeys = append(missingKeys, key)
			continue
		}

		var value V
		if err := dl.unmarshal(redisValues[i], &value); err != nil {
			dl.opts.Logger.WarnContext(ctx, "redis value undecodable", slog.String("key", newKeys[i]), slog.Any("error", err))
			missingKeys = append(missingKeys, key)
			continue
		}
		resultMap[key] = hresult.Value(value)
	}

	// 3. if there are missing keys, load them
	if len(missingKeys) > 0 {
		loadData := dl.load(ctx, missingKeys)
		for idx, key := range missingKeys {
			resultMap[key] = loadData[idx]
		}

		// 4. save the loaded successes to redis
		_, err := dl.redisClient.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			return dl.pipeLineSet(ctx, pipe, missingKeys, loadData)
		})
		if err != nil {
			dl.opts.Logger.WarnContext(ctx, "redis pipeline failed", slog.Any("error", err), slog.Int("keys", len(missingKeys)))
		}
	}

	return mapToSlice(keys, resultMap)
}

// load calls the backing loader, sharing the call with concurrent loads of
// the same key set
func (dl *Loader[K, V]) load(ctx context.Context, keys []K) []hresult.Of[V] {
	if dl.loader == nil {
		results := make([]hresult.Of[V], len(keys))
		for i := range results {
			results[i] = hresult.To[V](hresult.NewError(hresult.CodeNotImpl))
		}
		return results
	}

	flightKey := make([]string, len(keys))
	for i, key := range keys {
		flightKey[i] = dl.opts.KeyFunc(key)
	}

	// the call is shared, so one caller's cancellation must not fail the others
	v, _, _ := dl.group.Do(strings.Join(flightKey, "\x00"), func() (interface{}, error) {
		results := dl.loader(context.WithoutCancel(ctx), keys)
		if len(results) != len(keys) {
			dl.opts.Logger.ErrorContext(ctx, "loader returned wrong number of results",
				slog.Int("keys", len(keys)),
				slog.Int("results", len(results)),
			)
			failed := hresult.To[V](hresult.NewErrorWith(hresult.CodeUnexpected,
				fmt.Errorf("loader returned %d results for %d keys", len(results), len(keys))))
			results = make([]hresult.Of[V], len(keys))
			for i := range results {
				results[i] = failed
			}
		}
		return results, nil
	})
	return v.([]hresult.Of[V])
}

func (dl *Loader[K, V]) unmarshal(raw interface{}, value *V) error {
	s, ok := raw.(string)
	if !ok {
		return fmt.Errorf("unexpected redis value type %T", raw)
	}
	return dl.opts.UnmarshalFunc([]byte(s), value)
}

// pipeLineSet queues a SET for every successful result
func (dl *Loader[K, V]) pipeLineSet(ctx context.Context, pipe pipelinerInterface, keys []K, loadData []hresult.Of[V]) error {
	for idx, key := range keys {
		value, ok := loadData[idx].TryValue()
		if !ok {
			continue
		}
		data, err := dl.opts.MarshalFunc(value)
		if err != nil {
			dl.opts.Logger.WarnContext(ctx, "marshal failed", slog.String("key", dl.opts.KeyFunc(key)), slog.Any("error", err))
			continue
		}
		pipe.Set(ctx, dl.opts.KeyFunc(key), data, dl.opts.Expiration)
	}

	return nil
}

// mapToSlice converts a map to a slice
func mapToSlice[K comparable, V any](keys []K, m map[K]V) []V {
	result := make([]V, len(keys))
	for i, key := range keys {
		result[i] = m[key]
	}
	return result
}
