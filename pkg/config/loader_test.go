package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("loads values from environment", func(t *testing.T) {
		type serverConfig struct {
			Addr  string `env:"TEST_CFG_ADDR" envDefault:":8080"`
			Debug bool   `env:"TEST_CFG_DEBUG" envDefault:"false"`
		}

		t.Setenv("TEST_CFG_ADDR", ":9999")
		t.Setenv("TEST_CFG_DEBUG", "true")

		var cfg serverConfig
		err := config.Load(&cfg)
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Addr)
		assert.True(t, cfg.Debug)
	})

	t.Run("applies defaults for unset variables", func(t *testing.T) {
		type defaultedConfig struct {
			Timeout string `env:"TEST_CFG_UNSET_TIMEOUT" envDefault:"10s"`
		}

		var cfg defaultedConfig
		err := config.Load(&cfg)
		require.NoError(t, err)
		assert.Equal(t, "10s", cfg.Timeout)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		type requiredConfig struct {
			Secret string `env:"TEST_CFG_MISSING_SECRET,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("returns cached value on subsequent loads", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"TEST_CFG_CACHED" envDefault:"first"`
		}

		t.Setenv("TEST_CFG_CACHED", "first")
		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CFG_CACHED", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))

		assert.Equal(t, first.Value, second.Value)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		type nilConfig struct{}
		err := config.Load[nilConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		type panicConfig struct {
			Token string `env:"TEST_CFG_PANIC_TOKEN,required"`
		}

		assert.Panics(t, func() {
			var cfg panicConfig
			config.MustLoad(&cfg)
		})
	})
}
