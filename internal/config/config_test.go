package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/citymst/internal/config"
	"github.com/katalvlaran/citymst/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key so defaults apply; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	for _, k := range []string{config.KeyPort, config.KeySeed, config.KeyMethod, config.KeyDefaultK} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Port:     "8080",
		Seed:     0,
		Method:   prim_kruskal.MethodKruskal,
		DefaultK: 5,
	}, cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.KeyPort, "9090")
	t.Setenv(config.KeySeed, "42")
	t.Setenv(config.KeyMethod, "Prim")
	t.Setenv(config.KeyDefaultK, "7")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, prim_kruskal.MethodPrim, cfg.Method)
	assert.Equal(t, 7, cfg.DefaultK)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		config.KeySeed:     "abc",
		config.KeyMethod:   "boruvka",
		config.KeyDefaultK: "1",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := config.FromEnv()
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override set variables; unset the ones the file provides.
	require.NoError(t, os.Unsetenv(config.KeySeed))
	require.NoError(t, os.Unsetenv(config.KeyMethod))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CITYMST_SEED=7\nCITYMST_METHOD=prim\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(config.KeySeed)
		os.Unsetenv(config.KeyMethod)
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, prim_kruskal.MethodPrim, cfg.Method)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}
