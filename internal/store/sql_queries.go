// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const cacheEntriesTable = "cache_entries"

// sqlite uses "?" placeholders, the squirrel default.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildGetEntryQuery builds the SELECT of a single cache value by key.
func buildGetEntryQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(cacheEntriesTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

// buildPutEntryQuery builds an upsert of value under key.
func buildPutEntryQuery(key string, value []byte, now time.Time) (string, []any, error) {
	return psql.
		Insert(cacheEntriesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
