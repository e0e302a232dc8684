package ports

import "time"

// CloseScheduler defers the auto-close of fixed-duration moments.
// Tasks are keyed by moment ID, not timer identity, so re-opening a
// category after a close never cancels the new instance's timer.
// Cancel is synchronous: once it returns, the task will not fire.
type CloseScheduler interface {
	Schedule(momentID string, after time.Duration, fn func())
	Cancel(momentID string)
	// Stop cancels all pending tasks.
	Stop()
}
