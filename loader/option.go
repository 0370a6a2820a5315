package loader

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// config holds the configuration for a loader
type config struct {
	BatchSize      int
	Wait           time.Duration
	CacheSize      int
	CacheExpire    time.Duration
	TracerProvider trace.TracerProvider
	Logger         *slog.Logger
}

// Option is a function type for configuring a loader
type Option func(*config)

// WithCache sets the size and expiry of the cache of successful values
func WithCache(size int, expire time.Duration) Option {
	return func(c *config) {
		c.CacheSize = size
		c.CacheExpire = expire
	}
}

// WithBatchSize sets the maximum number of keys per call to the Loader
func WithBatchSize(size int) Option {
	return func(c *config) {
		c.BatchSize = size
	}
}

// WithWait sets how long a batch collects keys before it is dispatched
func WithWait(wait time.Duration) Option {
	return func(c *config) {
		c.Wait = wait
	}
}

// WithTracerProvider sets the tracer provider for load and batch spans
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.TracerProvider = tp
	}
}

// WithLogger sets the logger used to report failed batches
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.Logger = logger
	}
}
