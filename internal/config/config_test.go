package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://labdados.com/produtos", cfg.SalesAPI.URL)
	assert.Equal(t, time.Duration(0), cfg.SalesAPI.Timeout)
	assert.Equal(t, 2020, cfg.Dashboard.MinYear)
	assert.Equal(t, 2023, cfg.Dashboard.MaxYear)
	assert.Equal(t, 5, cfg.Dashboard.TopSellers)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:8501"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.UpstreamCheck.Enabled)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestNewConfig_Environment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("SALES_API_URL", "http://localhost:9000/produtos")
	t.Setenv("SALES_API_TIMEOUT", "5s")
	t.Setenv("DASHBOARD_TOP_SELLERS", "7")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("UPSTREAM_CHECK_ENABLED", "true")
	t.Setenv("APP_ENV", "production")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/produtos", cfg.SalesAPI.URL)
	assert.Equal(t, 5*time.Second, cfg.SalesAPI.Timeout)
	assert.Equal(t, 7, cfg.Dashboard.TopSellers)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.UpstreamCheck.Enabled)
	assert.Equal(t, "production", cfg.App.Env)
}
