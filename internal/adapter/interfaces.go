// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// remote project store.
//
// The primary abstraction is [ProjectAdapter], which decouples the sync
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPProjectAdapter]) built on resty.
//
// Every failure is translated into one of the errors defined in errors.go
// (ErrAuth, ErrPermission, ErrRetrieval, ErrFind, ErrUpdate, ErrShape) so that
// callers can use [errors.Is] and show err.Error() to the user without
// leaking transport details. The raw diagnostics are logged.
package adapter

import (
	"context"

	"github.com/MKhiriev/project-pilot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/project_adapter_mock.go -package=mock

// ProjectAdapter defines transport-agnostic communication with the remote
// project store: a paginated collection sorted by name, addressable by id.
type ProjectAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. An empty token disables the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set.
	Token() string

	// FetchPage returns page (1-based) of at most limit projects sorted by
	// name. Returns [ErrInvalidPageRequest] if page or limit is below 1,
	// [ErrAuth] on 401, [ErrPermission] on 403, [ErrShape] if the body is not
	// an array of project objects, and [ErrRetrieval] for anything else.
	FetchPage(ctx context.Context, page, limit int) ([]models.Project, error)

	// Find returns the project identified by id. Errors follow FetchPage,
	// with [ErrFind] as the generic failure.
	Find(ctx context.Context, id int64) (models.Project, error)

	// Update replaces the project with the same id on the server and returns
	// the server's canonical version of it. Any failure is [ErrUpdate].
	Update(ctx context.Context, project models.Project) (models.Project, error)
}
