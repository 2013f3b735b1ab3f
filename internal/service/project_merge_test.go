// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/project-pilot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectsWithIDs(ids ...int64) []models.Project {
	out := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Project{ID: id, Name: "p", Budget: float64(id)})
	}
	return out
}

// ── MergePage ────────────────────────────────────────────────────────────────

func TestMergePage(t *testing.T) {
	tests := []struct {
		name     string
		existing []models.Project
		page     int
		incoming []models.Project
		want     []models.Project
	}{
		{
			name:     "first page into empty",
			existing: nil,
			page:     1,
			incoming: projectsWithIDs(1, 2, 3),
			want:     projectsWithIDs(1, 2, 3),
		},
		{
			name:     "first page replaces stale state",
			existing: projectsWithIDs(7, 8, 9),
			page:     1,
			incoming: projectsWithIDs(1, 2),
			want:     projectsWithIDs(1, 2),
		},
		{
			name:     "later page appends",
			existing: projectsWithIDs(1, 2),
			page:     2,
			incoming: projectsWithIDs(3, 4),
			want:     projectsWithIDs(1, 2, 3, 4),
		},
		{
			name:     "no deduplication",
			existing: projectsWithIDs(1, 2),
			page:     2,
			incoming: projectsWithIDs(2, 3),
			want:     projectsWithIDs(1, 2, 2, 3),
		},
		{
			name:     "empty later page",
			existing: projectsWithIDs(1),
			page:     3,
			incoming: nil,
			want:     projectsWithIDs(1),
		},
		{
			name:     "empty first page clears",
			existing: projectsWithIDs(1),
			page:     1,
			incoming: nil,
			want:     []models.Project{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergePage(tt.existing, tt.page, tt.incoming)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergePage_Associative(t *testing.T) {
	existing := projectsWithIDs(1, 2)
	p2 := projectsWithIDs(3, 4)
	p3 := projectsWithIDs(5)

	stepwise := MergePage(MergePage(existing, 2, p2), 3, p3)
	combined := MergePage(existing, 2, append(append([]models.Project{}, p2...), p3...))

	assert.Equal(t, combined, stepwise)
	assert.Equal(t, projectsWithIDs(1, 2, 3, 4, 5), stepwise)
}

func TestMergePage_DoesNotAliasInputs(t *testing.T) {
	existing := make([]models.Project, 2, 10)
	copy(existing, projectsWithIDs(1, 2))
	incoming := projectsWithIDs(3)

	got := MergePage(existing, 2, incoming)
	got[0].Name = "changed"
	got[2].Name = "changed"

	assert.Equal(t, "p", existing[0].Name)
	assert.Equal(t, "p", incoming[0].Name)

	// spare capacity of existing must not be written through
	other := append(existing, projectsWithIDs(99)...)
	assert.Equal(t, int64(3), got[2].ID)
	assert.Equal(t, int64(99), other[2].ID)

	first := MergePage(nil, 1, incoming)
	first[0].Name = "changed"
	assert.Equal(t, "p", incoming[0].Name)
}

// ── MergeUpdate ──────────────────────────────────────────────────────────────

func TestMergeUpdate_ReplacesByID(t *testing.T) {
	existing := projectsWithIDs(1, 2, 3)
	updated := models.Project{ID: 2, Name: "Beta", Budget: 550}

	got := MergeUpdate(existing, updated)

	require.Len(t, got, len(existing))
	for i := range existing {
		assert.Equal(t, existing[i].ID, got[i].ID, "order and ids preserved")
	}
	assert.Equal(t, updated, got[1])
	assert.Equal(t, existing[0], got[0])
	assert.Equal(t, existing[2], got[2])
	assert.Equal(t, 2.0, existing[1].Budget, "input untouched")
}

func TestMergeUpdate_UnknownIDIsNoOp(t *testing.T) {
	existing := projectsWithIDs(1, 2, 3)

	got := MergeUpdate(existing, models.Project{ID: 42, Name: "ghost"})

	assert.Equal(t, existing, got)
	got[0].Name = "changed"
	assert.Equal(t, "p", existing[0].Name)
}

func TestMergeUpdate_Empty(t *testing.T) {
	got := MergeUpdate(nil, models.Project{ID: 1})
	require.NotNil(t, got)
	assert.Empty(t, got)
}
