// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/project-pilot/internal/logger"
)

type sqliteKeyValueStorage struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLiteKeyValueStorage returns a [KeyValueStorage] over the
// cache_entries table of db. The schema must already be migrated.
func NewSQLiteKeyValueStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	return &sqliteKeyValueStorage{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (s *sqliteKeyValueStorage) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildGetEntryQuery(key)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStorage.Get").
			Str("key", key).
			Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStorage.Get").
			Str("key", key).
			Msg("failed to query cache entry")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			s.logger.Err(err).
				Str("func", "sqliteKeyValueStorage.Get").
				Str("key", key).
				Msg("failed to read cache entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		return nil, ErrEntryNotFound
	}

	var value []byte
	if err = rows.Scan(&value); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStorage.Get").
			Str("key", key).
			Msg("failed to scan cache entry")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStorage) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := buildPutEntryQuery(key, value, s.now())
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStorage.Put").
			Str("key", key).
			Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStorage.Put").
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to upsert cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStorage) Close() error {
	return s.DB.Close()
}
