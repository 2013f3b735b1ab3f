// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrEntryNotFound is returned by [KeyValueStorage.Get] when no value is
// stored under the requested key.
var ErrEntryNotFound = errors.New("cache entry not found")

// ErrUnknownBackend is returned by [NewClientStorages] for a storage backend
// name it does not recognise.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Low-level database operation errors. These are wrapped by the SQLite
// storage when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a cache entry row fails.
	ErrScanningRow = errors.New("failed to scan cache entry row")
)
