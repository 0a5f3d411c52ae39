package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/dailypulse/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_ADDRESS=:9090\nTOKEN_TTL=2h\nTIMEZONE=Europe/Berlin\nBAD_TTL=soon\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg := config.New()
	assert.Equal(t, ":9090", cfg.GetString("API_ADDRESS"))
	assert.Equal(t, "sqlite", cfg.GetStringOr("STORAGE_DRIVER", "postgres"))
	assert.Equal(t, "fallback", cfg.GetStringOr("DAILYPULSE_UNSET", "fallback"))
	assert.Equal(t, 2*time.Hour, cfg.GetDuration("TOKEN_TTL", time.Hour))
	assert.Equal(t, time.Hour, cfg.GetDuration("BAD_TTL", time.Hour))
	assert.Equal(t, 7, cfg.GetInt("DAILYPULSE_UNSET", 7))
	assert.Equal(t, "Europe/Berlin", cfg.GetLocation("TIMEZONE").String())
	assert.Equal(t, time.Local, cfg.GetLocation("DAILYPULSE_UNSET"))
}
