package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/MKhiriev/project-pilot/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	formName = iota
	formDescription
	formBudget
	formActive
	formFieldCount
)

var errBudgetNotNumber = errors.New("budget must be a number")

type projectFormModel struct {
	original   models.Project
	inputs     []textinput.Model
	active     bool
	focus      int
	submitting bool
	errMsg     string
}

func newProjectFormModel(p models.Project) projectFormModel {
	inputs := make([]textinput.Model, formActive)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[formName].SetValue(p.Name)
	inputs[formDescription].SetValue(p.Description)
	inputs[formBudget].SetValue(strconv.FormatFloat(p.Budget, 'f', -1, 64))
	inputs[formName].Focus()

	return projectFormModel{
		original: p,
		inputs:   inputs,
		active:   p.IsActive,
	}
}

// toProject applies the edited fields to the original project, keeping the
// fields the form does not show.
func (m projectFormModel) toProject() (models.Project, error) {
	p := m.original
	p.Name = strings.TrimSpace(m.inputs[formName].Value())
	p.Description = strings.TrimSpace(m.inputs[formDescription].Value())
	p.IsActive = m.active

	budget, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[formBudget].Value()), 64)
	if err != nil {
		return models.Project{}, errBudgetNotNumber
	}
	p.Budget = budget

	return p, nil
}

func (m *projectFormModel) setFocus(i int) {
	m.focus = (i + formFieldCount) % formFieldCount
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m projectFormModel) View() string {
	var b strings.Builder

	b.WriteString("Name:        [" + m.inputs[formName].View() + "]\n")
	b.WriteString("Description: [" + m.inputs[formDescription].View() + "]\n")
	b.WriteString("Budget:      [" + m.inputs[formBudget].View() + "]\n")

	check := "[ ]"
	if m.active {
		check = "[x]"
	}
	label := check + " Active"
	if m.focus == formActive {
		label = cursorStyle.Render(label)
	}
	b.WriteString(label)

	if m.submitting {
		b.WriteString("\n\nSaving...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.errMsg))
	}

	return renderPage("Edit: "+m.original.Name, b.String(), "tab: next field  space: toggle active  enter: save  esc: cancel")
}
