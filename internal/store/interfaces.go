// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the local cache of the project-pilot client.
//
// The cache is layered: [ProjectCache] persists the whole project collection
// as one JSON value, and delegates the actual I/O to a [KeyValueStorage].
// Three storage backends are available:
//   - SQLite ([NewSQLiteKeyValueStorage]) with goose-managed schema;
//   - a JSON document on disk ([NewFileKeyValueStorage]);
//   - process memory ([NewMemoryKeyValueStorage]).
//
// [NewClientStorages] picks the backend from configuration.
package store

import (
	"context"

	"github.com/MKhiriev/project-pilot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is a durable string-keyed byte store.
type KeyValueStorage interface {
	// Get returns the value stored under key, or [ErrEntryNotFound].
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases resources held by the storage.
	Close() error
}

// ProjectCache persists the complete project collection between runs.
// Neither method fails observably: problems are logged and Read falls back
// to an empty collection.
type ProjectCache interface {
	// Read returns the last written collection, or an empty slice when
	// nothing was written yet or the stored value cannot be decoded.
	Read(ctx context.Context) []models.Project

	// Write replaces the stored collection with projects.
	Write(ctx context.Context, projects []models.Project)

	// PageLimit returns the page size the stored collection was fetched
	// with, or 0 when it is unknown.
	PageLimit(ctx context.Context) int

	// WritePageLimit records the page size of the stored collection.
	WritePageLimit(ctx context.Context, limit int)
}
