package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "clientId", cfg.CookieName)
	assert.Equal(t, 100, cfg.MaxPageSize)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concerts.yaml")
	yml := `
addr: ":9000"
store: redis
redis_addr: "localhost:6379"
shutdown_timeout: 5s
otel:
  service_name: lab
  probability: 1
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("MAX_PAGE_SIZE", "25")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 25, cfg.MaxPageSize)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "lab", cfg.OTel.ServiceName)
	assert.Equal(t, 1.0, cfg.OTel.Probability)
	assert.Equal(t, "clientId", cfg.CookieName, "unset keys keep defaults")
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("MAX_PAGE_SIZE", "many")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown store", func(c *Config) { c.Store = "mongo" }},
		{"redis without addr", func(c *Config) { c.Store = StoreRedis }},
		{"postgres without url", func(c *Config) { c.Store = StorePostgres }},
		{"zero page size", func(c *Config) { c.MaxPageSize = 0 }},
		{"probability", func(c *Config) { c.OTel.Probability = 2 }},
		{"half tls", func(c *Config) { c.TLSCert = "server.crt" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}
