package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_DefaultsAndEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("UPLOAD_MAXFILES", "4")

	require.NoError(t, InitConfig())
	cfg := GetConfig()

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, 4, cfg.Upload.MaxFiles)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, time.Minute, cfg.Redis.DefaultCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}
