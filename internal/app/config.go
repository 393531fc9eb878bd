// Package app provides the application initialization and wiring.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/walrus-registry/internal/domain"
	"github.com/bnema/walrus-registry/pkg/bytesize"
)

// Config holds the application configuration.
type Config struct {
	Server struct {
		Port              int           `mapstructure:"port" yaml:"port"`
		DataDir           string        `mapstructure:"data_dir" yaml:"data_dir"`
		ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
		ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `mapstructure:"server" yaml:"server"`

	Logging struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
		File   struct {
			Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
			Path       string `mapstructure:"path" yaml:"path"`
			MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
			MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
			MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
		} `mapstructure:"file" yaml:"file"`
	} `mapstructure:"logging" yaml:"logging"`

	Storage struct {
		Backend string `mapstructure:"backend" yaml:"backend"`
		Inline  struct {
			Compression string `mapstructure:"compression" yaml:"compression"`
		} `mapstructure:"inline" yaml:"inline"`
		SQLite struct {
			Path           string        `mapstructure:"path" yaml:"path"`
			PoolSize       int           `mapstructure:"pool_size" yaml:"pool_size"`
			AcquireTimeout time.Duration `mapstructure:"acquire_timeout" yaml:"acquire_timeout"`
		} `mapstructure:"sqlite" yaml:"sqlite"`
	} `mapstructure:"storage" yaml:"storage"`

	Walrus struct {
		Binary  string        `mapstructure:"binary" yaml:"binary"`
		Config  string        `mapstructure:"config" yaml:"config"`
		Epochs  int           `mapstructure:"epochs" yaml:"epochs"`
		Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
		TmpDir  string        `mapstructure:"tmp_dir" yaml:"tmp_dir"`
	} `mapstructure:"walrus" yaml:"walrus"`

	Registry struct {
		VerifyDigest    bool   `mapstructure:"verify_digest" yaml:"verify_digest"`
		MaxManifestSize string `mapstructure:"max_manifest_size" yaml:"max_manifest_size"`
		MaxBlobSize     string `mapstructure:"max_blob_size" yaml:"max_blob_size"`
	} `mapstructure:"registry" yaml:"registry"`

	API struct {
		RateLimit struct {
			Enabled        bool          `mapstructure:"enabled" yaml:"enabled"`
			GlobalRPS      float64       `mapstructure:"global_rps" yaml:"global_rps"`
			PerIPRPS       float64       `mapstructure:"per_ip_rps" yaml:"per_ip_rps"`
			Burst          int           `mapstructure:"burst" yaml:"burst"`
			IdleTTL        time.Duration `mapstructure:"idle_ttl" yaml:"idle_ttl"`
			TrustedProxies []string      `mapstructure:"trusted_proxies" yaml:"trusted_proxies"`
		} `mapstructure:"rate_limit" yaml:"rate_limit"`
	} `mapstructure:"api" yaml:"api"`
}

// DefaultDataDir returns the default data directory path.
// Uses ~/.walreg for user installations, /var/lib/walreg as fallback.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".walreg")
	}
	return "/var/lib/walreg"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: walreg.toml
// Search paths (in order): /etc/walreg, ~/.config/walreg, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("walreg")
	v.SetConfigType("toml")
	v.AddConfigPath("/etc/walreg")
	v.AddConfigPath("$HOME/.config/walreg")
	v.AddConfigPath(".")
}

// LoadConfig resolves defaults, the config file and the environment.
func LoadConfig(configPath string) (Config, error) {
	_, cfg, err := initConfig(configPath)
	return cfg, err
}

func initConfig(configPath string) (*viper.Viper, Config, error) {
	v := viper.New()
	if err := loadConfig(v, configPath); err != nil {
		return nil, Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Storage.SQLite.Path == "" {
		cfg.Storage.SQLite.Path = filepath.Join(cfg.Server.DataDir, "registry.db")
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, Config{}, err
	}
	return v, cfg, nil
}

// loadConfig loads configuration from file and sets defaults.
func loadConfig(v *viper.Viper, configPath string) error {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.data_dir", DefaultDataDir())
	v.SetDefault("server.read_header_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("storage.backend", string(domain.StorageModeInline))
	v.SetDefault("storage.inline.compression", "none")
	v.SetDefault("storage.sqlite.path", "")
	v.SetDefault("storage.sqlite.pool_size", 1)
	v.SetDefault("storage.sqlite.acquire_timeout", "5s")
	v.SetDefault("walrus.binary", "walrus")
	v.SetDefault("walrus.config", "")
	v.SetDefault("walrus.epochs", 0)
	v.SetDefault("walrus.timeout", "2m")
	v.SetDefault("walrus.tmp_dir", "")
	v.SetDefault("registry.verify_digest", false)
	v.SetDefault("registry.max_manifest_size", "4MB")
	v.SetDefault("registry.max_blob_size", "512MB")
	v.SetDefault("api.rate_limit.enabled", true)
	v.SetDefault("api.rate_limit.global_rps", 500)
	v.SetDefault("api.rate_limit.per_ip_rps", 50)
	v.SetDefault("api.rate_limit.burst", 100)
	v.SetDefault("api.rate_limit.idle_ttl", "10m")
	v.SetDefault("api.rate_limit.trusted_proxies", []string{})

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("WALREG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// DATABASE_URL is honored as an alias for the metadata database path.
	if err := v.BindEnv("storage.sqlite.path", "WALREG_STORAGE_SQLITE_PATH", "DATABASE_URL"); err != nil {
		return fmt.Errorf("failed to bind database env: %w", err)
	}

	return nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	switch domain.StorageMode(c.Storage.Backend) {
	case domain.StorageModeInline:
	case domain.StorageMode("walrus"), domain.StorageModeDelegated:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", domain.StorageModeInline, "walrus", c.Storage.Backend)
	}
	if c.Storage.SQLite.PoolSize < 1 {
		return fmt.Errorf("storage.sqlite.pool_size must be at least 1, got %d", c.Storage.SQLite.PoolSize)
	}
	if c.Storage.SQLite.AcquireTimeout <= 0 {
		return fmt.Errorf("storage.sqlite.acquire_timeout must be positive")
	}
	if c.Walrus.Timeout <= 0 {
		return fmt.Errorf("walrus.timeout must be positive")
	}
	if c.Walrus.Epochs < 0 {
		return fmt.Errorf("walrus.epochs must not be negative")
	}
	if _, _, err := c.bodyLimits(); err != nil {
		return err
	}
	return nil
}

// bodyLimits returns the manifest and blob body limits in bytes.
func (c Config) bodyLimits() (manifest, blob int64, err error) {
	if manifest, err = bytesize.Parse(c.Registry.MaxManifestSize); err != nil {
		return 0, 0, fmt.Errorf("registry.max_manifest_size: %w", err)
	}
	if blob, err = bytesize.Parse(c.Registry.MaxBlobSize); err != nil {
		return 0, 0, fmt.Errorf("registry.max_blob_size: %w", err)
	}
	return manifest, blob, nil
}

// usesWalrus reports whether blobs are delegated to the walrus network.
func (c Config) usesWalrus() bool {
	mode := domain.StorageMode(c.Storage.Backend)
	return mode == "walrus" || mode == domain.StorageModeDelegated
}
