// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/project-pilot/internal/config"
	"github.com/MKhiriev/project-pilot/internal/logger"
)

// ClientStorages groups the client-side storage into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// KeyValue is the backend selected by configuration. It is owned by
	// ClientStorages and released by Close.
	KeyValue KeyValueStorage

	// ProjectCache persists the synced project collection.
	ProjectCache ProjectCache
}

// NewClientStorages initialises the backend named by cfg.Backend:
//   - "sqlite" opens (creating if needed) cfg.DB.DSN and runs migrations;
//   - "file" loads cfg.File.Path;
//   - "memory" keeps everything in process.
//
// Returns [ErrUnknownBackend] for any other name.
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	var kv KeyValueStorage

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv = NewSQLiteKeyValueStorage(db, logger)
	case config.BackendFile:
		kv = NewFileKeyValueStorage(cfg.File.Path, logger)
	case config.BackendMemory:
		kv = NewMemoryKeyValueStorage()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	return &ClientStorages{
		KeyValue:     kv,
		ProjectCache: NewProjectCache(kv, logger),
	}, nil
}

// Close releases the underlying storage backend.
func (s *ClientStorages) Close() error {
	if s == nil || s.KeyValue == nil {
		return nil
	}
	return s.KeyValue.Close()
}
