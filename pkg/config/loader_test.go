package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bernadoadk/Edofi-sub001/pkg/config"
)

type testConfig struct {
	Name  string `env:"CONFIG_TEST_NAME" envDefault:"edofi"`
	Port  int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
	Debug bool   `env:"CONFIG_TEST_DEBUG" envDefault:"false"`
}

type overrideConfig struct {
	Value string `env:"CONFIG_TEST_VALUE" envDefault:"default"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "edofi", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.Debug)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CONFIG_TEST_VALUE", "from-env")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-env", cfg.Value)
}

func TestLoad_CachesPerType(t *testing.T) {
	var first testConfig
	require.NoError(t, config.Load(&first))

	// A later env change does not affect an already-loaded type.
	t.Setenv("CONFIG_TEST_NAME", "changed")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}
