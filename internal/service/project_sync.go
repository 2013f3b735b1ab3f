// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/project-pilot/internal/adapter"
	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/internal/store"
	"github.com/MKhiriev/project-pilot/internal/utils"
	"github.com/MKhiriev/project-pilot/models"
)

// DefaultPageLimit is used when a non-positive page limit is configured.
const DefaultPageLimit = 20

type projectSyncService struct {
	adapter adapter.ProjectAdapter
	cache   store.ProjectCache
	limit   int
	logger  *logger.Logger

	mu       sync.RWMutex
	projects []models.Project
	state    models.SyncState

	// cachedLimit is the page size recorded in the cache. While it differs
	// from limit the cached collection cannot be continued page by page.
	cachedLimit int
}

// NewProjectSyncService creates a sync session over projectAdapter and
// cache. The collection is read from the cache synchronously. When it was
// fetched with the same page limit, the current page is derived from its
// size, so a restarted session continues paging where the previous one
// stopped. Otherwise the session starts at page 1 and Init fetches page 1
// again.
//
// Every session logs with its own session_id.
func NewProjectSyncService(projectAdapter adapter.ProjectAdapter, cache store.ProjectCache, limit int, log *logger.Logger) ProjectSyncService {
	if limit < 1 {
		limit = DefaultPageLimit
	}

	sessionLogger := &logger.Logger{Logger: log.With().
		Str("session_id", utils.NewUUIDGenerator().Generate()).
		Logger()}

	cached := cache.Read(sessionLogger.WithContext(context.Background()))
	if cached == nil {
		cached = []models.Project{}
	}

	cachedLimit := cache.PageLimit(sessionLogger.WithContext(context.Background()))

	s := &projectSyncService{
		adapter:     projectAdapter,
		cache:       cache,
		limit:       limit,
		logger:      sessionLogger,
		projects:    cached,
		state:       models.SyncState{CurrentPage: 1},
		cachedLimit: cachedLimit,
	}
	if !s.stale() {
		s.state.CurrentPage = pagesCovered(len(cached), limit)
	}

	sessionLogger.Debug().
		Str("func", "NewProjectSyncService").
		Int("cached", len(cached)).
		Int("cached_limit", cachedLimit).
		Bool("stale", s.stale()).
		Int("current_page", s.state.CurrentPage).
		Msg("sync session created")

	return s
}

// pagesCovered is max(1, ceil(n/limit)).
func pagesCovered(n, limit int) int {
	pages := (n + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

// stale reports whether the collection was paged with a different limit.
// Must be called with mu held or before the service is shared.
func (s *projectSyncService) stale() bool {
	return len(s.projects) > 0 && s.cachedLimit != s.limit
}

func (s *projectSyncService) Init(ctx context.Context) error {
	s.mu.RLock()
	cached, stale := len(s.projects), s.stale()
	s.mu.RUnlock()

	if cached > 0 && !stale {
		s.logger.Debug().
			Str("func", "projectSyncService.Init").
			Int("cached", cached).
			Msg("using cached projects")
		return nil
	}

	return s.fetchPage(ctx, 1, "projectSyncService.Init")
}

func (s *projectSyncService) LoadMore(ctx context.Context, page int) error {
	s.mu.RLock()
	current, stale := s.state.CurrentPage, s.stale()
	s.mu.RUnlock()

	if page <= current {
		return ErrPageOutOfOrder
	}
	if stale {
		return ErrStalePages
	}

	return s.fetchPage(ctx, page, "projectSyncService.LoadMore")
}

func (s *projectSyncService) Refresh(ctx context.Context) error {
	return s.fetchPage(ctx, 1, "projectSyncService.Refresh")
}

// fetchPage loads page and merges it. The page precondition is checked
// again under the lock so two racing LoadMore calls cannot both pass it.
func (s *projectSyncService) fetchPage(ctx context.Context, page int, caller string) error {
	if err := s.begin(func() error {
		if page > 1 && page <= s.state.CurrentPage {
			return ErrPageOutOfOrder
		}
		if page > 1 && s.stale() {
			return ErrStalePages
		}
		return nil
	}); err != nil {
		return err
	}

	log := s.logger.With().Str("func", caller).Int("page", page).Logger()
	log.Debug().Int("limit", s.limit).Msg("fetching page")

	incoming, err := s.adapter.FetchPage(s.logger.WithContext(ctx), page, s.limit)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.fail(err)
		log.Warn().Err(err).Msg("page fetch failed, collection unchanged")
		return err
	}

	s.projects = MergePage(s.projects, page, incoming)
	s.state.CurrentPage = page
	s.succeed(ctx)
	if s.cachedLimit != s.limit {
		s.cache.WritePageLimit(s.logger.WithContext(ctx), s.limit)
		s.cachedLimit = s.limit
	}

	log.Debug().
		Int("received", len(incoming)).
		Int("total", len(s.projects)).
		Msg("page merged")

	return nil
}

func (s *projectSyncService) Save(ctx context.Context, project models.Project) (models.Project, error) {
	if project.IsNew() {
		return models.Project{}, ErrProjectNotPersisted
	}

	if err := s.begin(nil); err != nil {
		return models.Project{}, err
	}

	log := s.logger.With().
		Str("func", "projectSyncService.Save").
		Int64("project_id", project.ID).
		Logger()

	updated, err := s.adapter.Update(s.logger.WithContext(ctx), project)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.fail(err)
		log.Warn().Err(err).Msg("update failed, collection unchanged")
		return models.Project{}, err
	}

	s.projects = MergeUpdate(s.projects, updated)
	s.succeed(ctx)

	log.Debug().Msg("server version merged")

	return updated, nil
}

func (s *projectSyncService) Reload(ctx context.Context, id int64) error {
	if err := s.begin(nil); err != nil {
		return err
	}

	log := s.logger.With().
		Str("func", "projectSyncService.Reload").
		Int64("project_id", id).
		Logger()

	found, err := s.adapter.Find(s.logger.WithContext(ctx), id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.fail(err)
		log.Warn().Err(err).Msg("reload failed, collection unchanged")
		return err
	}

	s.projects = MergeUpdate(s.projects, found)
	s.succeed(ctx)

	return nil
}

func (s *projectSyncService) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneProjects(s.projects, 0)
}

func (s *projectSyncService) State() models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// begin enters the loading state. It returns ErrBusy if a request is already
// in flight, or the error of check, which runs under the lock; in both cases
// the state is left untouched.
func (s *projectSyncService) begin(check func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Loading {
		return ErrBusy
	}
	if check != nil {
		if err := check(); err != nil {
			return err
		}
	}

	s.state.Loading = true
	return nil
}

// succeed writes the collection through to the cache and returns to idle.
// Must be called with mu held.
func (s *projectSyncService) succeed(ctx context.Context) {
	s.cache.Write(s.logger.WithContext(ctx), s.projects)
	s.state.Loading = false
	s.state.Error = ""
}

// fail records the user-facing message of err and returns to idle. Must be
// called with mu held.
func (s *projectSyncService) fail(err error) {
	s.state.Loading = false
	s.state.Error = err.Error()
}
