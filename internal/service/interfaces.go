// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/project-pilot/models"
)

// ProjectSyncService keeps an in-memory project collection consistent with
// the remote project store and mirrors every successful change into the
// local cache.
//
// All methods are safe for concurrent use. Only one network-triggering call
// runs at a time; a second one returns [ErrBusy] without side effects.
type ProjectSyncService interface {
	// Init fetches page 1 when the collection loaded from the cache is
	// empty. With a non-empty cache it does nothing.
	Init(ctx context.Context) error

	// LoadMore fetches page and appends it to the collection. page must be
	// greater than the current page, otherwise [ErrPageOutOfOrder].
	LoadMore(ctx context.Context, page int) error

	// Save sends project to the remote store and merges the server's version
	// of it into the collection. The caller's value is never merged.
	Save(ctx context.Context, project models.Project) (models.Project, error)

	// Refresh re-fetches page 1, replacing the collection, and resets the
	// current page to 1.
	Refresh(ctx context.Context) error

	// Reload fetches the canonical version of one project and merges it.
	Reload(ctx context.Context, id int64) error

	// Projects returns a copy of the collection.
	Projects() []models.Project

	// State returns a snapshot of the sync state.
	State() models.SyncState
}
