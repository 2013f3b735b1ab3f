// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/project-pilot/internal/adapter"
	"github.com/MKhiriev/project-pilot/internal/app"
	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/internal/mock"
	"github.com/MKhiriev/project-pilot/internal/store"
	"github.com/MKhiriev/project-pilot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testLimit = 20

func alphaBetaGamma() []models.Project {
	return []models.Project{
		{ID: 1, Name: "Alpha", Description: "a", Budget: 100},
		{ID: 2, Name: "Beta", Description: "b", Budget: 200},
		{ID: 3, Name: "Gamma", Description: "c", Budget: 300},
	}
}

// newTestSyncSvc creates a projectSyncService over a mocked adapter and an
// in-memory cache pre-filled with cached, paged with testLimit.
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller, cached []models.Project) (*projectSyncService, *mock.MockProjectAdapter, store.ProjectCache) {
	t.Helper()

	mockAdapter := mock.NewMockProjectAdapter(ctrl)
	cache := store.NewProjectCache(store.NewMemoryKeyValueStorage(), logger.Nop())
	if cached != nil {
		cache.Write(context.Background(), cached)
		cache.WritePageLimit(context.Background(), testLimit)
	}

	svc := NewProjectSyncService(mockAdapter, cache, testLimit, logger.Nop()).(*projectSyncService)
	return svc, mockAdapter, cache
}

// idRange returns the ids from..to inclusive.
func idRange(from, to int64) []int64 {
	out := make([]int64, 0, to-from+1)
	for id := from; id <= to; id++ {
		out = append(out, id)
	}
	return out
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewProjectSyncService_CurrentPageFromCache(t *testing.T) {
	tests := []struct {
		name   string
		cached int
		want   int
	}{
		{name: "empty cache", cached: 0, want: 1},
		{name: "partial page", cached: 3, want: 1},
		{name: "exactly one page", cached: 20, want: 1},
		{name: "one more than a page", cached: 21, want: 2},
		{name: "three pages", cached: 45, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ids := make([]int64, tt.cached)
			for i := range ids {
				ids[i] = int64(i + 1)
			}

			svc, _, _ := newTestSyncSvc(t, ctrl, projectsWithIDs(ids...))

			state := svc.State()
			assert.Equal(t, tt.want, state.CurrentPage)
			assert.False(t, state.Loading)
			assert.Empty(t, state.Error)
			assert.Len(t, svc.Projects(), tt.cached)
		})
	}
}

func TestNewProjectSyncService_NonPositiveLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockProjectAdapter(ctrl)
	cache := store.NewProjectCache(store.NewMemoryKeyValueStorage(), logger.Nop())

	svc := NewProjectSyncService(mockAdapter, cache, 0, logger.Nop()).(*projectSyncService)
	assert.Equal(t, DefaultPageLimit, svc.limit)
}

func TestNewProjectSyncService_PageLimitChanged(t *testing.T) {
	tests := []struct {
		name        string
		cachedLimit int
	}{
		{name: "smaller limit before", cachedLimit: 10},
		{name: "unknown limit", cachedLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()
			mockAdapter := mock.NewMockProjectAdapter(ctrl)

			cache := store.NewProjectCache(store.NewMemoryKeyValueStorage(), logger.Nop())
			cache.Write(ctx, projectsWithIDs(idRange(1, 30)...))
			if tt.cachedLimit > 0 {
				cache.WritePageLimit(ctx, tt.cachedLimit)
			}

			svc := NewProjectSyncService(mockAdapter, cache, testLimit, logger.Nop())
			assert.Equal(t, 1, svc.State().CurrentPage)
			assert.Len(t, svc.Projects(), 30, "cached records are shown until page 1 arrives")

			firstPage := projectsWithIDs(idRange(1, 20)...)
			mockAdapter.EXPECT().FetchPage(gomock.Any(), 1, testLimit).Return(firstPage, nil)
			require.NoError(t, svc.Init(ctx))

			assert.Equal(t, firstPage, svc.Projects())
			assert.Equal(t, firstPage, cache.Read(ctx))
			assert.Equal(t, testLimit, cache.PageLimit(ctx))

			secondPage := projectsWithIDs(idRange(21, 40)...)
			mockAdapter.EXPECT().FetchPage(gomock.Any(), 2, testLimit).Return(secondPage, nil)
			require.NoError(t, svc.LoadMore(ctx, 2))

			assert.Equal(t, projectsWithIDs(idRange(1, 40)...), svc.Projects())
		})
	}
}

func TestLoadMore_StalePagesNeedRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	mockAdapter := mock.NewMockProjectAdapter(ctrl)

	cache := store.NewProjectCache(store.NewMemoryKeyValueStorage(), logger.Nop())
	cache.Write(ctx, projectsWithIDs(idRange(1, 30)...))
	cache.WritePageLimit(ctx, 10)

	svc := NewProjectSyncService(mockAdapter, cache, testLimit, logger.Nop())

	mockAdapter.EXPECT().FetchPage(gomock.Any(), 1, testLimit).Return(nil, adapter.ErrRetrieval)
	require.ErrorIs(t, svc.Init(ctx), adapter.ErrRetrieval)

	// no FetchPage for page 2 expected
	require.ErrorIs(t, svc.LoadMore(ctx, 2), ErrStalePages)
	assert.Len(t, svc.Projects(), 30)
	assert.Equal(t, 10, cache.PageLimit(ctx))

	mockAdapter.EXPECT().FetchPage(gomock.Any(), 1, testLimit).Return(projectsWithIDs(idRange(1, 20)...), nil)
	require.NoError(t, svc.Refresh(ctx))

	mockAdapter.EXPECT().FetchPage(gomock.Any(), 2, testLimit).Return(projectsWithIDs(idRange(21, 25)...), nil)
	require.NoError(t, svc.LoadMore(ctx, 2))
	assert.Len(t, svc.Projects(), 25)
}

// ── Init ─────────────────────────────────────────────────────────────────────

func TestInit_EmptyCacheFetchesFirstPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, cache := newTestSyncSvc(t, ctrl, nil)
	ctx := context.Background()

	mockAdapter.EXPECT().FetchPage(gomock.Any(), 1, testLimit).
		DoAndReturn(func(_ context.Context, _, _ int) ([]models.Project, error) {
			assert.True(t, svc.State().Loading, "loading while the request is in flight")
			return alphaBetaGamma(), nil
		})

	require.NoError(t, svc.Init(ctx))

	assert.Equal(t, alphaBetaGamma(), svc.Projects())
	assert.Equal(t, alphaBetaGamma(), cache.Read(ctx), "written through to the cache")

	state := svc.State()
	assert.Equal(t, models.StatusIdle, state.Status())
	assert.Equal(t, 1, state.CurrentPage)
}

func TestInit_NonEmptyCacheSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSyncSvc(t, ctrl, alphaBetaGamma())

	// no expectations: any adapter call fails the test
	require.NoError(t, svc.Init(context.Background()))

	assert.Equal(t, alphaBetaGamma(), svc.Projects())
	assert.Equal(t, models.StatusIdle, svc.State().Status())
}

func TestInit_FailureKeepsCollectionEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, cache := newTestSyncSvc(t, ctrl, nil)
	ctx := context.Background()

	mockAdapter.EXPECT().FetchPage(gomock.Any(), 1, testLimit).Return(nil, adapter.ErrRetrieval)

	err := svc.Init(ctx)
	require.ErrorIs(t, err, adapter.ErrRetrieval)

	assert.Empty(t, svc.Projects())
	assert.Empty(t, cache.Read(ctx))

	state := svc.State()
	assert.Equal(t, models.StatusError, state.Status())
	assert.Equal(t, app.MsgRetrievalFailed, state.Error)
}

// ── LoadMore ─────────────────────────────────────────────────────────────────

func TestLoadMore_AppendsAndAdvancesPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, cache := newTestSyncSvc(t, ctrl, alphaBetaGamma())
	ctx := context.Background()

	page2 := []models.Project{{ID: 4, Name: "Delta"}, {ID: 5, Name: "Epsilon"}}
	mockAdapter.EXPECT().FetchPage(gomock.Any(), 2, testLimit).Return(page2, nil)

	require.NoError(t, svc.LoadMore(ctx, 2))

	want := append(alphaBetaGamma(), page2...)
	assert.Equal(t, want, svc.Projects())
	assert.Equal(t, want, cache.Read(ctx))
	assert.Equal(t, 2, svc.State().CurrentPage)
}

func TestLoadMore_ForbiddenKeepsCachedRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, cache := newTestSyncSvc(t, ctrl, alphaBetaGamma())
	ctx := context.Background()

	mockAdapter.EXPECT().FetchPage(gomock.Any(), 2, testLimit).Return(nil, adapter.ErrPermission)

	err := svc.LoadMore(ctx, 2)
	require.ErrorIs(t, err, adapter.ErrPermission)

	assert.Equal(t, alphaBetaGamma(), svc.Projects())
	assert.Equal(t, alphaBetaGamma(), cache.Read(ctx))

	state := svc.State()
	assert.False(t, state.Loading)
	assert.Equal(t, "You do not have permission to view the project(s).", state.Error)
	assert.Equal(t, 1, state.CurrentPage, "page not advanced on failure")
}

func TestLoadMore_OutOfOrderPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, alphaBetaGamma())
	ctx := context.Background()

	mockAdapter.EXPECT().FetchPage(gomock.Any(), 3, testLimit).Return(projectsWithIDs(10), nil)
	require.NoError(t, svc.LoadMore(ctx, 3))

	before := svc.State()
	for _, page := range []int{0, 1, 2, 3} {
		err := svc.LoadMore(ctx, page)
		assert.ErrorIs(t, err, ErrPageOutOfOrder, "page %d", page)
	}
	assert.Equal(t, before, svc.State(), "precondition errors never touch the state")
}

func TestLoadMore_SuccessClearsPreviousError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, alphaBetaGamma())
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().FetchPage(gomock.Any(), 2, testLimit).Return(nil, adapter.ErrRetrieval),
		mockAdapter.EXPECT().FetchPage(gomock.Any(), 2, testLimit).Return(projectsWithIDs(4), nil),
	)

	require.Error(t, svc.LoadMore(ctx, 2))
	assert.Equal(t, models.StatusError, svc.State().Status())

	require.NoError(t, svc.LoadMore(ctx, 2))
	assert.Equal(t, models.StatusIdle, svc.State().Status())
	assert.Empty(t, svc.State().Error)
	assert.Len(t, svc.Projects(), 4)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestSave_MergesServerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, cache := newTestSyncSvc(t, ctrl, alphaBetaGamma())
	ctx := context.Background()

	sent := models.Project{ID: 2, Name: "Beta", Description: "b", Budget: 500}
	fromServer := models.Project{ID: 2, Name: "Beta", Description: "b", Budget: 550}

	mockAdapter.EXPECT().Update(gomock.Any(), sent).
		DoAndReturn(func(_ context.Context, _ models.Project) (models.Project, error) {
			assert.Equal(t, 200.0, svc.Projects()[1].Budget, "nothing merged before the server answers")
			return fromServer, nil
		})

	got, err := svc.Save(ctx, sent)
	require.NoError(t, err)
	assert.Equal(t, fromServer, got)

	projects := svc.Projects()
	require.Len(t, projects, 3)
	assert.Equal(t, 550.0, projects[1].Budget)
	assert.Equal(t, []int64{1, 2, 3}, []int64{projects[0].ID, projects[1].ID, projects[2].ID})
	assert.Equal(t, projects, cache.Read(ctx))
	assert.Equal(t, models.StatusIdle, svc.State().Status())
}

func TestSave_FailureLeavesCollectionAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockProjectAdapter(ctrl)
	mockCache := mock.NewMockProjectCache(ctrl)

	mockCache.EXPECT().Read(gomock.Any()).Return(alphaBetaGamma())
	mockCache.EXPECT().PageLimit(gomock.Any()).Return(testLimit)
	// no Write expected
	mockAdapter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(models.Project{}, adapter.ErrUpdate)

	svc := NewProjectSyncService(mockAdapter, mockCache, testLimit, logger.Nop())

	_, err := svc.Save(context.Background(), models.Project{ID: 2, Name: "Beta", Budget: 500})
	require.ErrorIs(t, err, adapter.ErrUpdate)

	assert.Equal(t, alphaBetaGamma(), svc.Projects())
	assert.Equal(t, app.MsgUpdateFailed, svc.State().Error)
}

func TestSave_UnknownIDIsSilentlyDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, alphaBetaGamma())

	ghost := models.Project{ID: 42, Name: "Ghost", Budget: 1}
	mockAdapter.EXPECT().Update(gomock.Any(), ghost).Return(ghost, nil)

	_, err := svc.Save(context.Background(), ghost)
	require.NoError(t, err)
	assert.Equal(t, alphaBetaGamma(), svc.Projects())
}

func TestSave_NewProjectRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSyncSvc(t, ctrl, alphaBetaGamma())

	_, err := svc.Save(context.Background(), models.Project{Name: "Fresh"})
	require.ErrorIs(t, err, ErrProjectNotPersisted)
	assert.Equal(t, models.StatusIdle, svc.State().Status())
}

// ── Refresh / Reload ─────────────────────────────────────────────────────────

func TestRefresh_ReplacesCollectionAndResetsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, cache := newTestSyncSvc(t, ctrl, alphaBetaGamma())
	ctx := context.Background()

	mockAdapter.EXPECT().FetchPage(gomock.Any(), 2, testLimit).Return(projectsWithIDs(4), nil)
	require.NoError(t, svc.LoadMore(ctx, 2))

	fresh := []models.Project{{ID: 9, Name: "Aardvark"}}
	mockAdapter.EXPECT().FetchPage(gomock.Any(), 1, testLimit).Return(fresh, nil)
	require.NoError(t, svc.Refresh(ctx))

	assert.Equal(t, fresh, svc.Projects())
	assert.Equal(t, fresh, cache.Read(ctx))
	assert.Equal(t, 1, svc.State().CurrentPage)
}

func TestReload_MergesCanonicalRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, alphaBetaGamma())

	canonical := models.Project{ID: 3, Name: "Gamma", Description: "c", Budget: 999}
	mockAdapter.EXPECT().Find(gomock.Any(), int64(3)).Return(canonical, nil)

	require.NoError(t, svc.Reload(context.Background(), 3))
	assert.Equal(t, canonical, svc.Projects()[2])
}

func TestReload_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, alphaBetaGamma())

	mockAdapter.EXPECT().Find(gomock.Any(), int64(3)).Return(models.Project{}, adapter.ErrFind)

	require.ErrorIs(t, svc.Reload(context.Background(), 3), adapter.ErrFind)
	assert.Equal(t, alphaBetaGamma(), svc.Projects())
	assert.Equal(t, app.MsgFindFailed, svc.State().Error)
}

// ── concurrency ──────────────────────────────────────────────────────────────

func TestBusyWhileRequestInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl, alphaBetaGamma())
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().FetchPage(gomock.Any(), 2, testLimit).
		DoAndReturn(func(_ context.Context, _, _ int) ([]models.Project, error) {
			close(started)
			<-release
			return projectsWithIDs(4), nil
		})

	done := make(chan error, 1)
	go func() { done <- svc.LoadMore(ctx, 2) }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not start")
	}

	inFlight := svc.State()
	assert.True(t, inFlight.Loading)

	_, err := svc.Save(ctx, models.Project{ID: 1})
	assert.ErrorIs(t, err, ErrBusy)
	assert.ErrorIs(t, svc.LoadMore(ctx, 3), ErrBusy)
	assert.ErrorIs(t, svc.Refresh(ctx), ErrBusy)
	assert.ErrorIs(t, svc.Reload(ctx, 1), ErrBusy)
	assert.Equal(t, inFlight, svc.State(), "rejected calls do not change state")

	close(release)
	require.NoError(t, <-done)
	assert.Len(t, svc.Projects(), 4)
	assert.False(t, svc.State().Loading)
}

func TestProjects_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestSyncSvc(t, ctrl, alphaBetaGamma())

	got := svc.Projects()
	got[0].Name = "changed"

	assert.Equal(t, "Alpha", svc.Projects()[0].Name)
}
