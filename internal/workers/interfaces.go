// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutine, which
// exits when ctx is cancelled or Stop is called. Stop blocks until that
// goroutine has returned and is safe to call on a worker that never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Refresher re-fetches the first page of the synced collection.
type Refresher interface {
	Refresh(ctx context.Context) error
}
