package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/u8text/internal/config/loader"
	"github.com/dshills/u8text/internal/engine/alloc"
	"github.com/dshills/u8text/internal/engine/codec"
	"github.com/dshills/u8text/internal/engine/transcode"
)

type memFS map[string]string

func (m memFS) Open(string) (fs.File, error) { return nil, fs.ErrNotExist }

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func noEnv() LoadOption {
	return WithEnv(loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, nil))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	mode, err := cfg.DecodeMode()
	require.NoError(t, err)
	assert.Equal(t, codec.ModeReplace, mode)

	w, err := cfg.WideWidth()
	require.NoError(t, err)
	assert.Equal(t, transcode.WideBits, w)

	a, err := cfg.Allocator()
	require.NoError(t, err)
	assert.Equal(t, alloc.Plain{}, a)

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestLoadFile(t *testing.T) {
	fsys := memFS{"/etc/u8text.toml": `
[decode]
mode = "strict"

[wide]
bits = 16

[alloc]
strategy = "paged"
page_size = 8192

[log]
level = "warn"
`}

	cfg, err := Load(WithFileSystem(fsys), WithFile("/etc/u8text.toml"), noEnv())
	require.NoError(t, err)

	assert.Equal(t, "strict", cfg.Decode.Mode)
	assert.Equal(t, 16, cfg.Wide.Bits)
	assert.Equal(t, AllocConfig{Strategy: "paged", PageSize: 8192}, cfg.Alloc)

	a, err := cfg.Allocator()
	require.NoError(t, err)
	assert.Equal(t, alloc.Paged{PageSize: 8192}, a)

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(WithReader(strings.NewReader("[alloc]\nstrategy = \"pool\"\n")), noEnv())
	require.NoError(t, err)

	assert.Equal(t, "replace", cfg.Decode.Mode)
	assert.Equal(t, alloc.DefaultPageSize, cfg.Alloc.PageSize)

	a, err := cfg.Allocator()
	require.NoError(t, err)
	assert.Same(t, alloc.DefaultPool, a)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg, err := Load(
		WithFileSystem(memFS{}),
		WithFile("/nope.toml"),
		noEnv(),
		WithLoadLogger(zap.New(core)),
	)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 1, logs.FilterMessage("config file not found, using defaults").Len())
}

func TestLoadRealFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "u8text.toml")
	require.NoError(t, os.WriteFile(path, []byte("[decode]\nmode = \"strict\"\n"), 0o644))

	cfg, err := Load(WithFile(path), noEnv())
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.Decode.Mode)
}

func TestEnvOverridesFile(t *testing.T) {
	fsys := memFS{"/u8text.toml": "[decode]\nmode = \"strict\"\n[wide]\nbits = 16\n"}
	env := loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, []string{
		"U8TEXT_DECODE_MODE=replace",
		"U8TEXT_ALLOC_STRATEGY=pool",
	})

	cfg, err := Load(WithFileSystem(fsys), WithFile("/u8text.toml"), WithEnv(env))
	require.NoError(t, err)
	assert.Equal(t, "replace", cfg.Decode.Mode)
	assert.Equal(t, 16, cfg.Wide.Bits)
	assert.Equal(t, StrategyPool, cfg.Alloc.Strategy)
}

func TestEnvStringSettings(t *testing.T) {
	env := loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, []string{
		"U8TEXT_LOG_LEVEL=off",
		"U8TEXT_ALLOC_STRATEGY=plain",
		"U8TEXT_LOG_DEVELOPMENT=on",
		"U8TEXT_ALLOC_PAGE_SIZE=8192",
	})

	cfg, err := Load(WithReader(strings.NewReader("[log]\nlevel = \"debug\"\n")), WithEnv(env))
	require.NoError(t, err)
	assert.Equal(t, "off", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, StrategyPlain, cfg.Alloc.Strategy)
	assert.Equal(t, 8192, cfg.Alloc.PageSize)

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))

	// A string setting that looks like a boolean reaches validation as text.
	env = loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, []string{"U8TEXT_DECODE_MODE=no"})
	_, err = Load(WithEnv(env))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "no", ve.Value)
}

func TestProcessEnvironment(t *testing.T) {
	t.Setenv("U8TEXT_WIDE_BITS", "32")
	t.Setenv("U8TEXT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Wide.Bits)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		toml   string
		target error
	}{
		{"bad mode", "[decode]\nmode = \"lenient\"\n", ErrInvalidMode},
		{"bad width", "[wide]\nbits = 8\n", ErrInvalidWidth},
		{"bad strategy", "[alloc]\nstrategy = \"arena\"\n", ErrInvalidStrategy},
		{"bad page size", "[alloc]\npage_size = -1\n", ErrInvalidPageSize},
		{"bad level", "[log]\nlevel = \"loud\"\n", ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(WithReader(strings.NewReader(tt.toml)), noEnv())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, err.Error(), ve.Path)
		})
	}
}

func TestLoadRejectsUnknownAndMalformed(t *testing.T) {
	_, err := Load(WithReader(strings.NewReader("[decode]\nmood = \"happy\"\n")), noEnv())
	var pe *loader.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "decode.mood")

	_, err = Load(WithReader(strings.NewReader("[decode\n")), noEnv())
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)

	_, err = Load(WithReader(strings.NewReader("[wide]\nbits = \"sixteen\"\n")), noEnv())
	require.ErrorAs(t, err, &pe)
}

func TestValidateReportsAllFailures(t *testing.T) {
	cfg := Default()
	cfg.Decode.Mode = "nope"
	cfg.Alloc.Strategy = "nope"

	err := cfg.Validate()
	assert.True(t, errors.Is(err, ErrInvalidMode))
	assert.True(t, errors.Is(err, codec.ErrInvalidMode))
	assert.True(t, errors.Is(err, ErrInvalidStrategy))
	assert.False(t, errors.Is(err, ErrInvalidWidth))
}

func TestBuilders(t *testing.T) {
	cfg := Default()
	cfg.Decode.Mode = "strict"

	core, logs := observer.New(zapcore.DebugLevel)
	d, err := cfg.Decoder(zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, codec.ModeStrict, d.Mode())

	_, err = d.Sanitize([]byte{'a', 0xFF})
	assert.ErrorIs(t, err, codec.ErrMalformed)
	assert.Equal(t, 1, logs.FilterMessage("rejected malformed input").Len())

	cfg.Decode.Mode = "bogus"
	_, err = cfg.Decoder(zap.NewNop())
	assert.ErrorIs(t, err, ErrInvalidMode)

	cfg.Log.Level = "info"
	cfg.Log.Development = true
	l, err := cfg.Logger()
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}
