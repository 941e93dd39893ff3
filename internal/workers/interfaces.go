// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work happens on a
// goroutine owned by the worker until ctx is cancelled or Stop is called.
// Stop blocks until that goroutine has exited and is safe to call on a
// worker that never ran.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Syncer is the unit of periodic work: a flush of the pending edit or a
// revalidation of the known version.
type Syncer interface {
	Sync(ctx context.Context)
}
