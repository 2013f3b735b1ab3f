// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/models"
)

const (
	// projectsKey is the single entry the whole collection is stored under.
	projectsKey = "projects"

	pageLimitKey = "projects_page_limit"
)

type projectCache struct {
	storage KeyValueStorage
	logger  *logger.Logger
}

// NewProjectCache returns a [ProjectCache] storing the collection as a JSON
// array in storage.
func NewProjectCache(storage KeyValueStorage, logger *logger.Logger) ProjectCache {
	return &projectCache{
		storage: storage,
		logger:  logger,
	}
}

func (p *projectCache) Read(ctx context.Context) []models.Project {
	raw, err := p.storage.Get(ctx, projectsKey)
	if errors.Is(err, ErrEntryNotFound) {
		return []models.Project{}
	}
	if err != nil {
		p.logger.Warn().Err(err).
			Str("func", "projectCache.Read").
			Msg("cannot read cached projects, starting empty")
		return []models.Project{}
	}

	var projects []models.Project
	if err = json.Unmarshal(raw, &projects); err != nil {
		p.logger.Warn().Err(err).
			Str("func", "projectCache.Read").
			Int("bytes", len(raw)).
			Msg("cached projects are corrupt, starting empty")
		return []models.Project{}
	}
	if projects == nil {
		projects = []models.Project{}
	}

	return projects
}

func (p *projectCache) Write(ctx context.Context, projects []models.Project) {
	if projects == nil {
		projects = []models.Project{}
	}

	raw, err := json.Marshal(projects)
	if err != nil {
		p.logger.Err(err).
			Str("func", "projectCache.Write").
			Msg("cannot encode projects")
		return
	}

	if err = p.storage.Put(ctx, projectsKey, raw); err != nil {
		p.logger.Err(err).
			Str("func", "projectCache.Write").
			Int("count", len(projects)).
			Msg("cannot write projects to cache")
	}
}

func (p *projectCache) PageLimit(ctx context.Context) int {
	raw, err := p.storage.Get(ctx, pageLimitKey)
	if errors.Is(err, ErrEntryNotFound) {
		return 0
	}
	if err != nil {
		p.logger.Warn().Err(err).
			Str("func", "projectCache.PageLimit").
			Msg("cannot read cached page limit")
		return 0
	}

	limit, err := strconv.Atoi(string(raw))
	if err != nil || limit < 1 {
		p.logger.Warn().Err(err).
			Str("func", "projectCache.PageLimit").
			Str("value", string(raw)).
			Msg("cached page limit is corrupt")
		return 0
	}

	return limit
}

func (p *projectCache) WritePageLimit(ctx context.Context, limit int) {
	if err := p.storage.Put(ctx, pageLimitKey, []byte(strconv.Itoa(limit))); err != nil {
		p.logger.Err(err).
			Str("func", "projectCache.WritePageLimit").
			Int("limit", limit).
			Msg("cannot write page limit to cache")
	}
}
