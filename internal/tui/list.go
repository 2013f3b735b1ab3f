package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/project-pilot/models"
)

const listNameWidth = 32

func renderProjectList(projects []models.Project, idx int) string {
	if len(projects) == 0 {
		return "No projects"
	}

	var b strings.Builder
	for i, p := range projects {
		cursor := "  "
		line := fmt.Sprintf("%-*s %12s  %s", listNameWidth, fitText(p.Name, listNameWidth), formatBudget(p.Budget), activeLabel(p.IsActive))
		if i == idx {
			cursor = "> "
			line = cursorStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		if i < len(projects)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

// clampIndex keeps the cursor inside a list of n items.
func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
