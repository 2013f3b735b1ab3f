package adapter

import (
	"errors"

	"github.com/MKhiriev/project-pilot/internal/app"
)

// Translated errors returned by [ProjectAdapter]. The text of each error is
// the user-facing message, so callers may show err.Error() directly. Status
// codes, URLs and transport causes are logged, never wrapped into them.
var (
	// ErrAuth is returned for HTTP 401 on reads, or when the configured
	// bearer token is a JWT that has already expired.
	ErrAuth = errors.New(app.MsgLoginAgain)

	// ErrPermission is returned for HTTP 403 on reads.
	ErrPermission = errors.New(app.MsgNoPermission)

	// ErrRetrieval is returned by FetchPage for any other non-2xx status and
	// for transport failures.
	ErrRetrieval = errors.New(app.MsgRetrievalFailed)

	// ErrFind is returned by Find for any other non-2xx status and for
	// transport failures.
	ErrFind = errors.New(app.MsgFindFailed)

	// ErrUpdate is returned by Update for any failure: non-2xx status,
	// transport failure or malformed response body.
	ErrUpdate = errors.New(app.MsgUpdateFailed)

	// ErrShape is returned by reads when the server answered 2xx with a body
	// that is not shaped like project records.
	ErrShape = errors.New(app.MsgUnexpectedResponse)
)

// ErrInvalidPageRequest is returned by FetchPage when page or limit is below
// 1. No request is sent.
var ErrInvalidPageRequest = errors.New("page and limit must be positive")
