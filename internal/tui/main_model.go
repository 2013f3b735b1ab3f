package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/project-pilot/internal/service"
	"github.com/MKhiriev/project-pilot/internal/validators"
	"github.com/MKhiriev/project-pilot/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pollInterval  = 300 * time.Millisecond
	statusTimeout = 3 * time.Second
)

type screen int

const (
	screenList screen = iota
	screenEdit
)

type mainModel struct {
	ctx       context.Context
	sync      service.ProjectSyncService
	validator validators.Validator
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	projects []models.Project
	state    models.SyncState
	idx      int

	screen        screen
	form          projectFormModel
	spinner       spinner.Model
	status        string
	showBuildInfo bool
}

func newMainModel(ctx context.Context, sync service.ProjectSyncService, validator validators.Validator, buildInfo models.AppBuildInfo) mainModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := mainModel{
		ctx:       ctx,
		sync:      sync,
		validator: validator,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		spinner:   s,
	}
	m.snapshot()
	return m
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, pollCmd())
}

// snapshot re-reads the collection and state from the sync service.
func (m *mainModel) snapshot() {
	m.projects = m.sync.Projects()
	m.state = m.sync.State()
	m.idx = clampIndex(m.idx, len(m.projects))
}

func (m mainModel) current() (models.Project, bool) {
	if len(m.projects) == 0 || m.idx < 0 || m.idx >= len(m.projects) {
		return models.Project{}, false
	}
	return m.projects[m.idx], true
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case pollMsg:
		m.snapshot()
		return m, pollCmd()
	case syncDoneMsg:
		m.snapshot()
		if msg.err != nil {
			return m, m.setStatus(operationStatus(msg.err))
		}
		return m, nil
	case savedMsg:
		m.form.submitting = false
		m.snapshot()
		if msg.err != nil {
			m.form.errMsg = msg.err.Error()
			return m, nil
		}
		m.screen = screenList
		return m, m.setStatus("Saved " + msg.project.Name)
	case copiedMsg:
		if msg.err != nil {
			return m, m.setStatus("Copy failed: " + msg.err.Error())
		}
		return m, m.setStatus("Copied " + msg.name + " to clipboard")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.screen == screenEdit {
			return m.updateFormInput(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.screen == screenEdit {
		return m.updateForm(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m mainModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.idx = clampIndex(m.idx-1, len(m.projects))
	case key.Matches(msg, keys.down):
		m.idx = clampIndex(m.idx+1, len(m.projects))
	case key.Matches(msg, keys.more):
		m.state.Loading = true
		return m, m.cmdLoadMore(m.state.CurrentPage + 1)
	case key.Matches(msg, keys.refresh):
		m.state.Loading = true
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.reload):
		if p, ok := m.current(); ok {
			m.state.Loading = true
			return m, m.cmdReload(p.ID)
		}
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
		if p, ok := m.current(); ok {
			m.form = newProjectFormModel(p)
			m.screen = screenEdit
		}
	case key.Matches(msg, keys.copy):
		if p, ok := m.current(); ok {
			return m, m.cmdCopy(p)
		}
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m mainModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case key.Matches(msg, keys.toggle) && m.form.focus == formActive:
		m.form.active = !m.form.active
		return m, nil
	case key.Matches(msg, keys.enter):
		project, err := m.form.toProject()
		if err == nil {
			err = m.validator.Validate(m.ctx, project)
		}
		if err != nil {
			m.form.errMsg = strings.ReplaceAll(err.Error(), "\n", "; ")
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		m.state.Loading = true
		return m, m.cmdSave(project)
	}

	return m.updateFormInput(msg)
}

func (m mainModel) updateFormInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form.focus >= len(m.form.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *mainModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// operationStatus turns a rejected call into a status line. Failures of the
// request itself are already shown from the sync state.
func operationStatus(err error) string {
	switch {
	case errors.Is(err, service.ErrBusy):
		return "Please wait, another request is in progress"
	case errors.Is(err, service.ErrPageOutOfOrder):
		return "That page is already loaded"
	case errors.Is(err, service.ErrStalePages):
		return "Press r to refresh before loading more"
	default:
		return ""
	}
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

func (m mainModel) cmdLoadMore(page int) tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		return syncDoneMsg{err: sync.LoadMore(ctx, page)}
	}
}

func (m mainModel) cmdRefresh() tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		return syncDoneMsg{err: sync.Refresh(ctx)}
	}
}

func (m mainModel) cmdReload(id int64) tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		return syncDoneMsg{err: sync.Reload(ctx, id)}
	}
}

func (m mainModel) cmdSave(project models.Project) tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		saved, err := sync.Save(ctx, project)
		return savedMsg{project: saved, err: err}
	}
}

func (m mainModel) cmdCopy(project models.Project) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		payload, err := json.MarshalIndent(project, "", "  ")
		if err != nil {
			return copiedMsg{name: project.Name, err: err}
		}
		if err = copyText(string(payload)); err != nil {
			return copiedMsg{name: project.Name, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{name: project.Name}
	}
}

func (m mainModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.screen == screenEdit {
		return appStyle.Render(m.form.View())
	}

	title := fmt.Sprintf("ProjectPilot  page %d  %d projects", m.state.CurrentPage, len(m.projects))
	if m.state.Loading {
		title += "  " + m.spinner.View()
	}

	body := renderProjectList(m.projects, m.idx)
	if m.state.Error != "" {
		body += "\n\n" + errorStyle.Render(m.state.Error)
	}
	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}

	return appStyle.Render(renderPage(title, body, "m: more  r: refresh  u: reload  e: edit  c: copy  v: about  q: quit"))
}
