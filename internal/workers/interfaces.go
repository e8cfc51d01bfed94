// Package workers provides the background machinery of the hive: long-lived
// workers started together through a Workers aggregate, and a bounded task
// Pool whose overflow runs on the submitting goroutine.
package workers

import "context"

// Worker is a long-lived background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// TaskRunner executes short tasks off the request path when capacity allows.
type TaskRunner interface {
	Submit(task func())
}
