// Package workers runs the gateway's background jobs.
// It defines the Worker interface and a Workers aggregate that starts
// every configured worker in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutine and stop
// once ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
