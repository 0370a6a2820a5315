// Package loader batches calls into a platform function that answers many
// keys at once, and hands each caller an hresult.Of for its own key.
//
//	l := loader.New(func(ctx context.Context, ids []uint32) []hresult.Of[*Window] {
//		out := make([]hresult.Of[*Window], len(ids))
//		for i, id := range ids {
//			out[i] = hresult.Call(func() (*Window, hresult.Code) { return native.FindWindow(id) })
//		}
//		return out
//	}, loader.WithBatchSize(32))
//
//	w := l.Load(ctx, 7)
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sysulq/hresult-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/sysulq/hresult-go/loader"

// Loader is the function type for loading data. It must return one result
// per key, in key order.
//
// A batch serves many callers, so the context passed in carries the values
// of the caller that opened the batch but never its cancellation: the call
// runs to completion even after every waiter has gone away.
type Loader[K comparable, V any] func(context.Context, []K) []hresult.Of[V]

// Interface is the batched loader
type Interface[K comparable, V any] interface {
	// Load loads a single key
	Load(ctx context.Context, key K) hresult.Of[V]
	// LoadMany loads multiple keys, results are in key order
	LoadMany(ctx context.Context, keys []K) []hresult.Of[V]
	// LoadMap loads multiple keys and returns a map of results
	LoadMap(ctx context.Context, keys []K) map[K]hresult.Of[V]
	// Clear removes an item from the cache
	Clear(key K)
	// ClearAll clears the entire cache
	ClearAll()
	// Prime stores a value in the cache
	Prime(ctx context.Context, key K, value V) Interface[K, V]
}

// batch collects keys until it is full or its wait expires
type batch[K comparable, V any] struct {
	ctx     context.Context
	keys    []K
	waiters map[K][]chan hresult.Of[V]
	links   []trace.Link
	linked  map[trace.SpanID]struct{}
}

// dataLoader is the default Interface implementation
type dataLoader[K comparable, V any] struct {
	loader Loader[K, V]
	cache  *expirable.LRU[K, V]
	config config
	tracer trace.Tracer

	mu       sync.Mutex
	batch    *batch[K, V]
	inflight map[K]*batch[K, V]
}

// New creates a new batched loader with the given loader function and options.
// Callers whose context ends stop waiting, the Loader call they joined does
// not stop.
func New[K comparable, V any](loader Loader[K, V], options ...Option) Interface[K, V] {
	config := config{
		BatchSize:   100,
		Wait:        16 * time.Millisecond,
		CacheSize:   1000,
		CacheExpire: time.Minute,
	}

	for _, option := range options {
		option(&config)
	}

	if config.BatchSize < 1 {
		config.BatchSize = 1
	}
	if config.TracerProvider == nil {
		config.TracerProvider = otel.GetTracerProvider()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &dataLoader[K, V]{
		loader: loader,
		cache:  expirable.NewLRU[K, V](config.CacheSize, nil, config.CacheExpire),
		config: config,
		tracer:   config.TracerProvider.Tracer(tracerName),
		inflight: make(map[K]*batch[K, V]),
	}
}

// Load loads a single key
func (d *dataLoader[K, V]) Load(ctx context.Context, key K) hresult.Of[V] {
	ctx, span := d.tracer.Start(ctx, "hresult.Load")
	defer span.End()

	if err := ctx.Err(); err != nil {
		result := hresult.To[V](hresult.NewErrorFrom(err))
		recordResults(span, result)
		return result
	}

	result := await(ctx, d.goLoad(ctx, key))
	recordResults(span, result)
	return result
}

// LoadMany loads multiple keys
func (d *dataLoader[K, V]) LoadMany(ctx context.Context, keys []K) []hresult.Of[V] {
	ctx, span := d.tracer.Start(ctx, "hresult.LoadMany", trace.WithAttributes(attribute.Int("hresult.keys", len(keys))))
	defer span.End()

	results := make([]hresult.Of[V], len(keys))
	if err := ctx.Err(); err != nil {
		aborted := hresult.To[V](hresult.NewErrorFrom(err))
		for i := range results {
			results[i] = aborted
		}
		recordResults(span, results...)
		return results
	}

	chs := make([]<-chan hresult.Of[V], len(keys))
	for i, key := range keys {
		chs[i] = d.goLoad(ctx, key)
	}
	for i, ch := range chs {
		results[i] = await(ctx, ch)
	}

	recordResults(span, results...)
	return results
}

// LoadMap loads multiple keys and returns a map of results
func (d *dataLoader[K, V]) LoadMap(ctx context.Context, keys []K) map[K]hresult.Of[V] {
	ctx, span := d.tracer.Start(ctx, "hresult.LoadMap", trace.WithAttributes(attribute.Int("hresult.keys", len(keys))))
	defer span.End()

	results := make(map[K]hresult.Of[V], len(keys))
	if err := ctx.Err(); err != nil {
		aborted := hresult.To[V](hresult.NewErrorFrom(err))
		for _, key := range keys {
			results[key] = aborted
		}
		recordResults(span, aborted)
		return results
	}

	chs := make(map[K]<-chan hresult.Of[V], len(keys))
	for _, key := range keys {
		if _, ok := chs[key]; !ok {
			chs[key] = d.goLoad(ctx, key)
		}
	}

	failed := make([]hresult.Of[V], 0, len(chs))
	for key, ch := range chs {
		results[key] = await(ctx, ch)
		if results[key].IsError() {
			failed = append(failed, results[key])
		}
	}

	recordResults(span, failed...)
	return results
}

// Clear removes an item from the cache
func (d *dataLoader[K, V]) Clear(key K) {
	d.cache.Remove(key)
}

// ClearAll clears the entire cache
func (d *dataLoader[K, V]) ClearAll() {
	d.cache.Purge()
}

// Prime stores a value in the cache, replacing any cached value for key
func (d *dataLoader[K, V]) Prime(ctx context.Context, key K, value V) Interface[K, V] {
	d.cache.Add(key, value)
	return d
}

// goLoad queues key on the pending batch and returns the channel its
// result will arrive on
func (d *dataLoader[K, V]) goLoad(ctx context.Context, key K) <-chan hresult.Of[V] {
	ch := make(chan hresult.Of[V], 1)

	if v, ok := d.cache.Get(key); ok {
		ch <- hresult.Value(v)
		close(ch)
		return ch
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// already dispatched and not yet answered
	if b, ok := d.inflight[key]; ok {
		b.waiters[key] = append(b.waiters[key], ch)
		return ch
	}

	b := d.batch
	if b == nil {
		b = &batch[K, V]{
			ctx:     context.WithoutCancel(ctx),
			keys:    make([]K, 0, d.config.BatchSize),
			waiters: make(map[K][]chan hresult.Of[V]),
			linked:  make(map[trace.SpanID]struct{}),
		}
		d.batch = b
		go d.scheduleBatch(b)
	}

	if _, ok := b.waiters[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.waiters[key] = append(b.waiters[key], ch)

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		if _, ok := b.linked[sc.SpanID()]; !ok {
			b.linked[sc.SpanID()] = struct{}{}
			b.links = append(b.links, trace.Link{SpanContext: sc})
		}
	}

	if len(b.keys) >= d.config.BatchSize {
		// full, so the next key starts a new batch
		d.dispatchLocked(b)
		go d.processBatch(b)
	}

	return ch
}

// scheduleBatch dispatches b once its wait expires, unless it already
// filled up
func (d *dataLoader[K, V]) scheduleBatch(b *batch[K, V]) {
	<-time.After(d.config.Wait)

	d.mu.Lock()
	if d.batch != b {
		d.mu.Unlock()
		return
	}
	d.dispatchLocked(b)
	d.mu.Unlock()

	d.processBatch(b)
}

// dispatchLocked closes b to new keys and marks its keys in flight.
// d.mu must be held.
func (d *dataLoader[K, V]) dispatchLocked(b *batch[K, V]) {
	if d.batch == b {
		d.batch = nil
	}
	for _, key := range b.keys {
		d.inflight[key] = b
	}
}

// processBatch calls the loader for b, caches the successes and answers
// every waiter
func (d *dataLoader[K, V]) processBatch(b *batch[K, V]) {
	ctx, span := d.tracer.Start(b.ctx, "hresult.Batch",
		trace.WithNewRoot(),
		trace.WithLinks(b.links...),
		trace.WithAttributes(attribute.Int("hresult.keys", len(b.keys))),
	)

	results := d.runLoader(ctx, b.keys)
	for i, key := range b.keys {
		if results[i].IsSuccess() {
			d.cache.Add(key, results[i].Value())
		}
	}
	recordResults(span, results...)
	span.End()

	// after this no goLoad can join b, later loads of its keys hit the
	// cache or start a new batch
	d.mu.Lock()
	waiters := make([][]chan hresult.Of[V], len(b.keys))
	for i, key := range b.keys {
		waiters[i] = b.waiters[key]
		if d.inflight[key] == b {
			delete(d.inflight, key)
		}
	}
	d.mu.Unlock()

	for i := range b.keys {
		for _, ch := range waiters[i] {
			ch <- results[i]
			close(ch)
		}
	}
}

// runLoader calls the loader and guarantees one valid result per key
func (d *dataLoader[K, V]) runLoader(ctx context.Context, keys []K) (results []hresult.Of[V]) {
	defer func() {
		if p := recover(); p != nil {
			d.config.Logger.ErrorContext(ctx, "loader panicked",
				slog.Any("panic", p),
				slog.Int("keys", len(keys)),
			)
			results = failAll[V](len(keys), fmt.Errorf("loader panicked: %v", p))
		}
	}()

	results = d.loader(ctx, keys)
	if len(results) != len(keys) {
		d.config.Logger.ErrorContext(ctx, "loader returned wrong number of results",
			slog.Int("keys", len(keys)),
			slog.Int("results", len(results)),
		)
		return failAll[V](len(keys), fmt.Errorf("loader returned %d results for %d keys", len(results), len(keys)))
	}

	for i := range results {
		if !results[i].IsValid() {
			results[i] = unexpected[V](fmt.Errorf("loader returned an uninitialized result for key %v", keys[i]))
		}
	}
	return results
}

// await waits for a result or for ctx to end
func await[V any](ctx context.Context, ch <-chan hresult.Of[V]) hresult.Of[V] {
	select {
	case result := <-ch:
		return result
	case <-ctx.Done():
		return hresult.To[V](hresult.NewErrorFrom(ctx.Err()))
	}
}

func failAll[V any](n int, cause error) []hresult.Of[V] {
	results := make([]hresult.Of[V], n)
	for i := range results {
		results[i] = unexpected[V](cause)
	}
	return results
}

func unexpected[V any](cause error) hresult.Of[V] {
	return hresult.To[V](hresult.NewErrorWith(hresult.CodeUnexpected, cause))
}

// recordResults marks span as failed when any result failed, tagging it
// with the first failure code
func recordResults[V any](span trace.Span, results ...hresult.Of[V]) {
	failed := 0
	var first hresult.Code
	for _, r := range results {
		if r.IsError() {
			if failed == 0 {
				first = r.Code()
			}
			failed++
		}
	}
	if failed == 0 {
		return
	}

	span.SetAttributes(
		attribute.String("hresult.code", first.String()),
		attribute.Int("hresult.failed", failed),
	)
	span.SetStatus(codes.Error, first.String())
}
