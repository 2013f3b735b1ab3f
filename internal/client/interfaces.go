// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end run by [App] once the first page is
// available.
type UI interface {
	Run(ctx context.Context) error
}

// BackgroundWorkers are started before the UI and stopped after it exits.
type BackgroundWorkers interface {
	Start(ctx context.Context)
	Stop()
}
