package tui

import "github.com/MKhiriev/project-pilot/models"

// syncDoneMsg reports the end of LoadMore, Refresh or Reload. The outcome
// itself is read back from the sync state.
type syncDoneMsg struct {
	err error
}

type savedMsg struct {
	project models.Project
	err     error
}

type copiedMsg struct {
	name string
	err  error
}

// pollMsg re-reads the sync state so background refreshes become visible.
type pollMsg struct{}

type clearStatusMsg struct{}
