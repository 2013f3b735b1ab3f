package utils

import (
	"time"

	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "project-pilot-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(baseURL, 15*time.Second)
//	resp, err := client.R().Get("/projects")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. Every request sent
// through it carries a JSON Accept header and is bounded by timeout.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent)

	return &HTTPClient{Client: client}
}

// WithRequestLogging logs method, url, status, duration and size of every
// completed response at debug level.
func (c *HTTPClient) WithRequestLogging(log *logger.Logger) *HTTPClient {
	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int("size", len(resp.Body())).
			Msg("http request")
		return nil
	})
	return c
}
