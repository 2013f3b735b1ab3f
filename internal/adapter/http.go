package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/project-pilot/internal/config"
	"github.com/MKhiriev/project-pilot/internal/logger"
	"github.com/MKhiriev/project-pilot/internal/utils"
	"github.com/MKhiriev/project-pilot/models"
	"github.com/go-resty/resty/v2"
)

const (
	projectsPath = "/projects"
	projectPath  = "/projects/{id}"
	sortField    = "name"
)

type httpProjectAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPProjectAdapter constructs an HTTP/REST implementation of
// [ProjectAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress, configures the underlying HTTP client with the resolved
// base URL and request timeout, and stores cfg.Token for authenticated
// requests.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPProjectAdapter(cfg config.Adapter, logger *logger.Logger) (ProjectAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpProjectAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithRequestLogging(logger),
		now:    time.Now,
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ProjectAdapter]. A value given as a full
// "Bearer <token>" header is reduced to the token itself.
func (h *httpProjectAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	if parsed, err := utils.ParseBearerToken(token); err == nil {
		token = parsed
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// Token implements [ProjectAdapter].
func (h *httpProjectAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchPage implements [ProjectAdapter]. It sends
// GET /projects?_page={page}&_limit={limit}&_sort=name and decodes the
// response into project entities.
func (h *httpProjectAdapter) FetchPage(ctx context.Context, page, limit int) ([]models.Project, error) {
	if page < 1 || limit < 1 {
		return nil, ErrInvalidPageRequest
	}

	req, err := h.request(ctx, opFetchPage)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParams(map[string]string{
			"_page":  strconv.Itoa(page),
			"_limit": strconv.Itoa(limit),
			"_sort":  sortField,
		}).
		Get(projectsPath)
	if err != nil {
		return nil, h.transportError(err, opFetchPage)
	}
	if err = h.mapHTTPError(resp, opFetchPage); err != nil {
		return nil, err
	}

	projects, err := decodeProjects(resp.Body())
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpProjectAdapter.FetchPage").
			Int("page", page).
			Int("limit", limit).
			Msg("malformed projects page")
		return nil, ErrShape
	}

	return projects, nil
}

// Find implements [ProjectAdapter]. It sends GET /projects/{id}.
func (h *httpProjectAdapter) Find(ctx context.Context, id int64) (models.Project, error) {
	req, err := h.request(ctx, opFind)
	if err != nil {
		return models.Project{}, err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(projectPath)
	if err != nil {
		return models.Project{}, h.transportError(err, opFind)
	}
	if err = h.mapHTTPError(resp, opFind); err != nil {
		return models.Project{}, err
	}

	project, err := decodeProject(resp.Body())
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpProjectAdapter.Find").
			Int64("project_id", id).
			Msg("malformed project")
		return models.Project{}, ErrShape
	}

	return project, nil
}

// Update implements [ProjectAdapter]. It sends the full project as JSON to
// PUT /projects/{id} and returns the decoded response.
func (h *httpProjectAdapter) Update(ctx context.Context, project models.Project) (models.Project, error) {
	req, err := h.request(ctx, opUpdate)
	if err != nil {
		return models.Project{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(project.ID, 10)).
		SetBody(project).
		Put(projectPath)
	if err != nil {
		return models.Project{}, h.transportError(err, opUpdate)
	}
	if err = h.mapHTTPError(resp, opUpdate); err != nil {
		return models.Project{}, err
	}

	updated, err := decodeProject(resp.Body())
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpProjectAdapter.Update").
			Int64("project_id", project.ID).
			Msg("malformed updated project")
		return models.Project{}, ErrUpdate
	}

	return updated, nil
}

// request prepares a request bound to ctx. If the stored token is a JWT that
// has already expired, the request is not sent and the error a 401 would
// have produced for op is returned instead.
func (h *httpProjectAdapter) request(ctx context.Context, op operation) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	token := h.Token()
	if token == "" {
		return req, nil
	}

	expired, err := utils.TokenExpired(token, h.now())
	if err != nil && !errors.Is(err, utils.ErrNotJWT) {
		h.logger.Debug().Err(err).
			Str("func", "httpProjectAdapter.request").
			Msg("cannot read token expiry")
	}
	if expired {
		h.logger.Warn().
			Str("func", "httpProjectAdapter.request").
			Str("operation", op.String()).
			Msg("bearer token expired, request not sent")
		return nil, translateStatus(http.StatusUnauthorized, op)
	}

	return req.SetAuthToken(token), nil
}

func (h *httpProjectAdapter) transportError(err error, op operation) error {
	h.logger.Err(err).
		Str("func", "httpProjectAdapter.transportError").
		Str("operation", op.String()).
		Msg("client transport error")
	return fallbackError(op)
}

// decodeProjects decodes a JSON array of project objects. Every element must
// be an object carrying a non-zero id.
func decodeProjects(body []byte) ([]models.Project, error) {
	body = bytes.TrimSpace(body)
	if !bytes.HasPrefix(body, []byte("[")) {
		return nil, errors.New("expected an array of projects")
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	projects := make([]models.Project, 0, len(raw))
	for i, item := range raw {
		project, err := decodeProject(item)
		if err != nil {
			return nil, fmt.Errorf("project #%d: %w", i, err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// decodeProject decodes a single project object with a non-zero id.
func decodeProject(body []byte) (models.Project, error) {
	body = bytes.TrimSpace(body)
	if !bytes.HasPrefix(body, []byte("{")) {
		return models.Project{}, errors.New("expected a project object")
	}

	var project models.Project
	if err := json.Unmarshal(body, &project); err != nil {
		return models.Project{}, fmt.Errorf("decode project: %w", err)
	}
	if project.IsNew() {
		return models.Project{}, errors.New("project without id")
	}

	return project, nil
}
