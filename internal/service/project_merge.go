// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/project-pilot/models"

// MergePage combines a freshly fetched page with the collection built so far.
//
// Page 1 replaces the whole collection: a first page always reflects the
// server's current ordering, so anything cached before it is dropped. Any
// other page is appended after existing without deduplication.
//
// The result never shares a backing array with existing or incoming.
func MergePage(existing []models.Project, page int, incoming []models.Project) []models.Project {
	if page == 1 {
		return cloneProjects(incoming, 0)
	}

	merged := cloneProjects(existing, len(incoming))
	return append(merged, incoming...)
}

// MergeUpdate returns a copy of existing in which the project with
// updated.ID is replaced by updated. Length and order are preserved. When
// no project has that id the copy is returned unchanged.
func MergeUpdate(existing []models.Project, updated models.Project) []models.Project {
	merged := cloneProjects(existing, 0)
	for i := range merged {
		if merged[i].ID == updated.ID {
			merged[i] = updated
		}
	}
	return merged
}

// cloneProjects copies projects into a new slice with room for extra more
// elements. It never returns nil.
func cloneProjects(projects []models.Project, extra int) []models.Project {
	out := make([]models.Project, len(projects), len(projects)+extra)
	copy(out, projects)
	return out
}
