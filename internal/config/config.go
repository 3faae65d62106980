package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/u8text/internal/config/loader"
	"github.com/dshills/u8text/internal/engine/alloc"
	"github.com/dshills/u8text/internal/engine/codec"
	"github.com/dshills/u8text/internal/engine/transcode"
)

// Allocator strategies.
const (
	StrategyPlain = "plain"
	StrategyPaged = "paged"
	StrategyPool  = "pool"
)

// Config holds the engine settings.
type Config struct {
	Decode DecodeConfig `toml:"decode"`
	Wide   WideConfig   `toml:"wide"`
	Alloc  AllocConfig  `toml:"alloc"`
	Log    LogConfig    `toml:"log"`
}

// DecodeConfig selects how raw bytes are admitted.
type DecodeConfig struct {
	Mode string `toml:"mode"`
}

// WideConfig overrides the wide character width. Zero keeps the platform width.
type WideConfig struct {
	Bits int `toml:"bits"`
}

// AllocConfig selects the buffer allocator.
type AllocConfig struct {
	Strategy string `toml:"strategy"`
	PageSize int    `toml:"page_size"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{Mode: codec.ModeReplace.String()},
		Alloc:  AllocConfig{Strategy: StrategyPlain, PageSize: alloc.DefaultPageSize},
		Log:    LogConfig{Level: "off"},
	}
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs     loader.FileSystem
	path   string
	reader io.Reader
	env    loader.Loader
	logger *zap.Logger
}

// WithFile reads settings from a TOML file. A missing file is skipped.
func WithFile(path string) LoadOption {
	return func(o *loadOptions) {
		o.path = path
	}
}

// WithFileSystem sets the file system WithFile reads from.
func WithFileSystem(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithReader reads settings from TOML in r, after any file.
func WithReader(r io.Reader) LoadOption {
	return func(o *loadOptions) {
		o.reader = r
	}
}

// WithEnv replaces the environment source. Pass nil to ignore the
// environment.
func WithEnv(env loader.Loader) LoadOption {
	return func(o *loadOptions) {
		o.env = env
	}
}

// WithLoadLogger sets the logger that reports which sources were used.
func WithLoadLogger(logger *zap.Logger) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Load builds a Config from the defaults, the configured sources and the
// environment, then validates it.
func Load(opts ...LoadOption) (*Config, error) {
	o := &loadOptions{
		fs:     loader.DefaultFS(),
		env:    loader.NewEnvLoader(loader.DefaultEnvPrefix),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	merged := make(map[string]any)

	if o.path != "" {
		fileConfig, err := loader.NewTOMLLoaderWithFS(o.fs, o.path).Load()
		if err != nil {
			return nil, err
		}
		if fileConfig == nil {
			o.logger.Debug("config file not found, using defaults", zap.String("path", o.path))
		} else {
			o.logger.Debug("loaded config file", zap.String("path", o.path))
			merged = loader.DeepMerge(merged, fileConfig)
		}
	}

	if o.reader != nil {
		readerConfig, err := loader.LoadFromReader(o.reader)
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, readerConfig)
	}

	if o.env != nil {
		envConfig, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		if len(envConfig) > 0 {
			o.logger.Debug("applied environment overrides", zap.Int("sections", len(envConfig)))
		}
		merged = loader.DeepMerge(merged, envConfig)
	}

	cfg := Default()
	if err := loader.DecodeStrict("config", merged, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting and reports all failures together.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.DecodeMode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.WideWidth(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Allocator(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// DecodeMode returns the configured codec mode.
func (c *Config) DecodeMode() (codec.Mode, error) {
	m, err := codec.ParseMode(c.Decode.Mode)
	if err != nil {
		return m, &ValidationError{Path: "decode.mode", Value: c.Decode.Mode, Err: err}
	}
	return m, nil
}

// WideWidth returns the configured wide width; zero means the platform width.
func (c *Config) WideWidth() (transcode.WideWidth, error) {
	switch c.Wide.Bits {
	case 0:
		return transcode.WideBits, nil
	case 16:
		return transcode.Wide16, nil
	case 32:
		return transcode.Wide32, nil
	default:
		return 0, &ValidationError{Path: "wide.bits", Value: c.Wide.Bits, Err: ErrInvalidWidth}
	}
}

// Allocator returns the configured allocator. The pool strategy shares
// alloc.DefaultPool.
func (c *Config) Allocator() (alloc.Allocator, error) {
	if c.Alloc.PageSize < 0 {
		return nil, &ValidationError{Path: "alloc.page_size", Value: c.Alloc.PageSize, Err: ErrInvalidPageSize}
	}
	switch strings.ToLower(c.Alloc.Strategy) {
	case "", StrategyPlain:
		return alloc.Plain{}, nil
	case StrategyPaged:
		return alloc.Paged{PageSize: c.Alloc.PageSize}, nil
	case StrategyPool:
		return alloc.DefaultPool, nil
	default:
		return nil, &ValidationError{Path: "alloc.strategy", Value: c.Alloc.Strategy, Err: ErrInvalidStrategy}
	}
}

// level returns the configured zap level, or nil when logging is off.
func (c *Config) level() (*zapcore.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "", "off", "none":
		return nil, nil
	}
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, &ValidationError{Path: "log.level", Value: c.Log.Level, Err: ErrInvalidLevel}
	}
	return &lvl, nil
}

// Logger builds a zap logger at the configured level. Level "off" yields a
// no-op logger.
func (c *Config) Logger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	if lvl == nil {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(*lvl)
	return zc.Build()
}

// Decoder builds a codec.Decoder in the configured mode that logs to logger.
func (c *Config) Decoder(logger *zap.Logger) (*codec.Decoder, error) {
	mode, err := c.DecodeMode()
	if err != nil {
		return nil, err
	}
	return codec.NewDecoder(codec.WithMode(mode), codec.WithLogger(logger)), nil
}
