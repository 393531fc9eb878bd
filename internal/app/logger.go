package app

import (
	"fmt"
	"path/filepath"

	"github.com/bnema/zerowrap"
)

// initLogger initializes the zerowrap logger. The returned cleanup is nil
// unless a log file was opened.
func initLogger(cfg Config) (zerowrap.Logger, func(), error) {
	logConfig := zerowrap.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}

	if !cfg.Logging.File.Enabled {
		return zerowrap.New(logConfig), nil, nil
	}

	log, cleanup, err := zerowrap.NewWithFile(logConfig, zerowrap.FileConfig{
		Enabled:    true,
		Path:       resolveLogFilePath(cfg),
		MaxSize:    cfg.Logging.File.MaxSize,
		MaxBackups: cfg.Logging.File.MaxBackups,
		MaxAge:     cfg.Logging.File.MaxAge,
		Compress:   true,
	})
	if err != nil {
		return zerowrap.Default(), nil, fmt.Errorf("failed to create logger with file: %w", err)
	}
	return log, cleanup, nil
}

// resolveLogFilePath returns the configured log file path or
// {data_dir}/logs/walreg.log.
func resolveLogFilePath(cfg Config) string {
	if cfg.Logging.File.Path != "" {
		return cfg.Logging.File.Path
	}
	return filepath.Join(cfg.Server.DataDir, "logs", "walreg.log")
}
