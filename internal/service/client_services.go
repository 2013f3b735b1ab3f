// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/project-pilot/internal/adapter"
	"github.com/MKhiriev/project-pilot/internal/config"
	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/internal/store"
)

// ClientServices groups the services used by the client UI and workers.
type ClientServices struct {
	ProjectSync ProjectSyncService
}

// NewClientServices builds the client services on top of the given storage
// and transport.
func NewClientServices(storages *store.ClientStorages, projectAdapter adapter.ProjectAdapter, cfg config.App, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ProjectSync: NewProjectSyncService(projectAdapter, storages.ProjectCache, cfg.PageLimit, logger),
	}
}
