// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Precondition errors of [ProjectSyncService]. They are returned to the
// caller as-is and never recorded in the sync state.
var (
	// ErrBusy is returned when a network-triggering call is made while
	// another one is still in flight.
	ErrBusy = errors.New("another sync operation is in progress")

	// ErrPageOutOfOrder is returned by LoadMore for a page that is not
	// greater than the current page.
	ErrPageOutOfOrder = errors.New("page must be greater than the current page")

	// ErrStalePages is returned by LoadMore while the cached collection was
	// fetched with a different page limit. Refresh starts paging over.
	ErrStalePages = errors.New("cached projects were paged with a different limit, refresh first")

	// ErrProjectNotPersisted is returned by Save for a project that has no
	// server-assigned id yet.
	ErrProjectNotPersisted = errors.New("project has no id and cannot be updated")
)
