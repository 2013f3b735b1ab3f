package models

// SyncStatus is the coarse state of a sync session derived from [SyncState].
type SyncStatus int

const (
	StatusIdle SyncStatus = iota
	StatusLoading
	StatusError
)

func (s SyncStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// SyncState is the transient state of a sync session. It lives only in
// memory and is never written to the local cache.
type SyncState struct {
	// Loading is true while a request to the remote store is in flight.
	Loading bool
	// Error holds the user-facing message of the last failed operation.
	// Empty means no error.
	Error string
	// CurrentPage is the highest page merged into the collection (>= 1).
	CurrentPage int
}

// Status derives the coarse status. Loading wins over a stale error.
func (s SyncState) Status() SyncStatus {
	switch {
	case s.Loading:
		return StatusLoading
	case s.Error != "":
		return StatusError
	default:
		return StatusIdle
	}
}
