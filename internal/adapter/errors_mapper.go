package adapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// operation identifies the adapter call whose failure is being translated.
type operation int

const (
	opFetchPage operation = iota
	opFind
	opUpdate
)

func (o operation) String() string {
	switch o {
	case opFetchPage:
		return "fetch page"
	case opFind:
		return "find"
	case opUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// fallbackError is the generic failure of op, used for unmapped statuses and
// transport errors.
func fallbackError(op operation) error {
	switch op {
	case opFind:
		return ErrFind
	case opUpdate:
		return ErrUpdate
	default:
		return ErrRetrieval
	}
}

// translateStatus maps a non-2xx status to the error returned for op. It is
// total: every status maps to exactly one translated error. Writes never
// distinguish statuses.
func translateStatus(status int, op operation) error {
	if op == opUpdate {
		return ErrUpdate
	}

	switch status {
	case http.StatusUnauthorized:
		return ErrAuth
	case http.StatusForbidden:
		return ErrPermission
	default:
		return fallbackError(op)
	}
}

// mapHTTPError returns nil for 2xx responses. Otherwise it logs the status
// code, status text and URL and returns the translated error for op.
func (h *httpProjectAdapter) mapHTTPError(resp *resty.Response, op operation) error {
	if resp.IsSuccess() {
		return nil
	}

	url := ""
	if resp.Request != nil {
		url = resp.Request.URL
	}

	h.logger.Warn().
		Str("func", "httpProjectAdapter.mapHTTPError").
		Str("operation", op.String()).
		Int("status", resp.StatusCode()).
		Str("status_text", statusText(resp)).
		Str("url", url).
		Msg("server http error")

	return translateStatus(resp.StatusCode(), op)
}

// statusText returns the reason phrase of the response, e.g. "Forbidden".
func statusText(resp *resty.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(resp.StatusCode())))
	if text == "" {
		text = http.StatusText(resp.StatusCode())
	}
	return text
}
