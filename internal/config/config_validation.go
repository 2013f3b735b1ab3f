// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [ClientConfig] satisfies all
// invariants before it is used at startup.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.PageLimit < 1 {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.Backend {
	case BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty sqlite dsn", ErrInvalidStorageConfigs)
		}
	case BackendFile:
		if cfg.Storage.File.Path == "" {
			return fmt.Errorf("%w: empty file path", ErrInvalidStorageConfigs)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLoggingConfigs, err)
		}
	}

	return nil
}
