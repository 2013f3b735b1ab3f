// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the project-pilot client: a
// project list with paging, refresh and clipboard copy, and an edit form
// whose input is validated before it is ever sent to the server.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/internal/service"
	"github.com/MKhiriev/project-pilot/internal/validators"
	"github.com/MKhiriev/project-pilot/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("tui: services are required")

type TUI struct {
	services  *service.ClientServices
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, validator validators.Validator, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.ProjectSync == nil {
		return nil, ErrNoServices
	}
	return &TUI{
		services:  services,
		validator: validator,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the project list until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainModel(ctx, t.services.ProjectSync, t.validator, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal ui stopped with error")
		return err
	}
	return nil
}
