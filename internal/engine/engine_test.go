package engine

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/u8text/internal/config"
	"github.com/dshills/u8text/internal/config/loader"
	"github.com/dshills/u8text/internal/engine/alloc"
	"github.com/dshills/u8text/internal/engine/codec"
)

// ============================================================================
// Construction
// ============================================================================

func TestNewDefaults(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	assert.Equal(t, ModeReplace, e.Decoder().Mode())
	assert.NotNil(t, e.Config())
	assert.NotNil(t, e.Logger())
}

func TestNewUsesConfiguredDecoder(t *testing.T) {
	cfg := config.Default()
	cfg.Decode.Mode = "strict"

	core, logs := observer.New(zapcore.DebugLevel)
	e, err := New(WithConfig(cfg), WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, e.Decoder().Mode())

	_, err = e.Decode([]byte{0xFF})
	assert.ErrorIs(t, err, codec.ErrMalformed)
	assert.Equal(t, 1, logs.FilterMessage("rejected malformed input").Len())
}

func TestNewWithOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Decode.Mode = "replace"

	e, err := New(WithConfig(cfg), WithDecodeMode(ModeStrict), WithWideWidth(Wide16), WithAllocator(alloc.Paged{PageSize: 64}))
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, e.Decoder().Mode())

	s := e.FromString("😀")
	assert.Equal(t, []WideChar{0xD83D, 0xDE00}, s.Wide())
}

func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		target error
	}{
		{"mode", func(c *config.Config) { c.Decode.Mode = "lenient" }, codec.ErrInvalidMode},
		{"wide", func(c *config.Config) { c.Wide.Bits = 8 }, config.ErrInvalidWidth},
		{"strategy", func(c *config.Config) { c.Alloc.Strategy = "arena" }, config.ErrInvalidStrategy},
		{"level", func(c *config.Config) { c.Log.Level = "chatty" }, config.ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			_, err := New(WithConfig(cfg))
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestLoad(t *testing.T) {
	env := loader.NewEnvLoaderFrom("U8TEXT_", []string{
		"U8TEXT_DECODE_MODE=strict",
		"U8TEXT_LOG_LEVEL=off",
	})
	e, err := Load([]config.LoadOption{
		config.WithReader(strings.NewReader("[alloc]\nstrategy = \"pool\"\n")),
		config.WithEnv(env),
	})
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, e.Decoder().Mode())
	assert.Equal(t, config.StrategyPool, e.Config().Alloc.Strategy)
	assert.Equal(t, "off", e.Config().Log.Level)
}

func TestLoadRejectsUnknownSetting(t *testing.T) {
	_, err := Load([]config.LoadOption{
		config.WithReader(strings.NewReader("[decode]\nfast = true\n")),
		config.WithEnv(nil),
	})
	assert.Error(t, err)
}

// ============================================================================
// String Construction
// ============================================================================

func TestDecodeModes(t *testing.T) {
	input := []byte("ok\xC0\x80")

	lenient, err := New()
	require.NoError(t, err)
	s, err := lenient.Decode(input)
	require.NoError(t, err)
	assert.Equal(t, "ok��", s.String())

	strict, err := New(WithDecodeMode(ModeStrict))
	require.NoError(t, err)
	_, err = strict.Decode(input)
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 2, merr.Offset)

	// Sanitize ignores the mode.
	assert.Equal(t, 4, strict.Sanitize(input).RuneCount())
}

func TestConstructors(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	want := "a€😀"
	cases := map[string]*String{
		"FromString": e.FromString(want),
		"FromBytes":  e.FromBytes([]byte(want)),
		"FromRunes":  e.FromRunes([]rune(want)),
		"FromUTF16":  e.FromUTF16([]uint16{'a', 0x20AC, 0xD83D, 0xDE00}),
		"FromUTF32":  e.FromUTF32([]uint32{'a', 0x20AC, 0x1F600}),
		"FromWide":   e.FromWide(e.FromString(want).Wide()),
	}
	for name, s := range cases {
		assert.Equal(t, want, s.String(), name)
	}

	latin, err := e.FromEncoded(Latin1, []byte{'c', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "cé", latin.String())

	empty := e.New()
	empty.AppendString("x")
	assert.Equal(t, "x", empty.String())
}

func TestEngineLogsSubstitutions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e, err := New(WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("engine created").Len())

	_, err = e.Decode([]byte{0xFF})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("sanitizing malformed input").Len())
}

// ============================================================================
// Concurrency
// ============================================================================

func TestConcurrentUse(t *testing.T) {
	e, err := New(WithAllocator(alloc.DefaultPool))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := e.FromString("héllo")
				s.AppendRune('!')
				if !assert.Equal(t, 6, s.RuneCount()) {
					return
				}
				s.Release()
			}
		}()
	}
	wg.Wait()
}
