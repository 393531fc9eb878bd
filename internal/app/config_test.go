package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walreg.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	dataDir := t.TempDir()
	path := writeConfig(t, "[server]\ndata_dir = \""+filepath.ToSlash(dataDir)+"\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "inline", cfg.Storage.Backend)
	assert.Equal(t, "none", cfg.Storage.Inline.Compression)
	assert.Equal(t, filepath.Join(dataDir, "registry.db"), cfg.Storage.SQLite.Path)
	assert.Equal(t, 1, cfg.Storage.SQLite.PoolSize)
	assert.Equal(t, 5*time.Second, cfg.Storage.SQLite.AcquireTimeout)
	assert.Equal(t, "walrus", cfg.Walrus.Binary)
	assert.Equal(t, 2*time.Minute, cfg.Walrus.Timeout)
	assert.False(t, cfg.Registry.VerifyDigest)
	assert.Equal(t, "4MB", cfg.Registry.MaxManifestSize)
	manifest, blob, err := cfg.bodyLimits()
	require.NoError(t, err)
	assert.Equal(t, int64(4<<20), manifest)
	assert.Equal(t, int64(512<<20), blob)
	assert.True(t, cfg.API.RateLimit.Enabled)
	assert.Equal(t, 50.0, cfg.API.RateLimit.PerIPRPS)
	assert.Equal(t, 10*time.Minute, cfg.API.RateLimit.IdleTTL)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 6000

[storage]
backend = "Walrus"

[storage.sqlite]
path = "/tmp/meta.db"
pool_size = 4
acquire_timeout = "250ms"

[walrus]
config = "/etc/walrus/client.yaml"
epochs = 3
timeout = "30s"

[registry]
verify_digest = true

[api.rate_limit]
trusted_proxies = ["10.0.0.0/8"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, "walrus", cfg.Storage.Backend)
	assert.True(t, cfg.usesWalrus())
	assert.Equal(t, "/tmp/meta.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, 4, cfg.Storage.SQLite.PoolSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Storage.SQLite.AcquireTimeout)
	assert.Equal(t, "/etc/walrus/client.yaml", cfg.Walrus.Config)
	assert.Equal(t, 3, cfg.Walrus.Epochs)
	assert.Equal(t, 30*time.Second, cfg.Walrus.Timeout)
	assert.True(t, cfg.Registry.VerifyDigest)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.API.RateLimit.TrustedProxies)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "[server]\nport = 6000\n")
	t.Setenv("WALREG_SERVER_PORT", "7000")
	t.Setenv("WALREG_STORAGE_SQLITE_POOL_SIZE", "8")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Storage.SQLite.PoolSize)
}

func TestLoadConfig_DatabaseURLAlias(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv("DATABASE_URL", "/srv/walreg/meta.db")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/walreg/meta.db", cfg.Storage.SQLite.Path)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "unknown backend", content: "[storage]\nbackend = \"s3\"\n", wantErr: "storage.backend"},
		{name: "empty pool", content: "[storage.sqlite]\npool_size = 0\n", wantErr: "pool_size"},
		{name: "bad port", content: "[server]\nport = 70000\n", wantErr: "server.port"},
		{name: "negative epochs", content: "[walrus]\nepochs = -1\n", wantErr: "walrus.epochs"},
		{name: "bad blob size", content: "[registry]\nmax_blob_size = \"lots\"\n", wantErr: "registry.max_blob_size"},
		{name: "malformed file", content: "[server\n", wantErr: "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestResolveLogFilePath(t *testing.T) {
	var cfg Config
	cfg.Server.DataDir = "/data"

	assert.Equal(t, filepath.Join("/data", "logs", "walreg.log"), resolveLogFilePath(cfg))

	cfg.Logging.File.Path = "/var/log/walreg.log"
	assert.Equal(t, "/var/log/walreg.log", resolveLogFilePath(cfg))
}

func TestInitLogger_File(t *testing.T) {
	var cfg Config
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	cfg.Logging.File.Enabled = true
	cfg.Logging.File.Path = filepath.Join(t.TempDir(), "logs", "walreg.log")

	log, cleanup, err := initLogger(cfg)
	require.NoError(t, err)
	if cleanup != nil {
		defer cleanup()
	}

	log.Info().Msg("hello")
}
