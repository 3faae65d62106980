package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/u8text/internal/config"
	"github.com/dshills/u8text/internal/engine/alloc"
	"github.com/dshills/u8text/internal/engine/codec"
	"github.com/dshills/u8text/internal/engine/transcode"
)

// Option configures an Engine during creation. Options apply on top of the
// configuration given by WithConfig.
type Option func(*Engine)

// WithConfig sets the configuration the engine is built from. Without it
// the engine uses config.Default.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// WithLogger sets the logger, overriding the configured log level.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithAllocator overrides the configured allocator.
func WithAllocator(a alloc.Allocator) Option {
	return func(e *Engine) {
		if a != nil {
			e.alloc = a
		}
	}
}

// WithDecodeMode overrides the configured decode mode.
func WithDecodeMode(m codec.Mode) Option {
	return func(e *Engine) {
		e.mode = &m
	}
}

// WithWideWidth overrides the configured wide width.
func WithWideWidth(w transcode.WideWidth) Option {
	return func(e *Engine) {
		e.wide = &w
	}
}
