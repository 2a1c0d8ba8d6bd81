// Package clock provides cancellable periodic tasks for the session
// countdown.
//
// Schedulers never run callbacks concurrently with the caller's event
// handling: Manual runs them when the test fires it, and Realtime hands
// them to a single consumer through a channel.
package clock

import "time"

// Cancel stops a periodic task. It is safe to call more than once.
type Cancel func()

// Scheduler starts periodic tasks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Cancel
}
