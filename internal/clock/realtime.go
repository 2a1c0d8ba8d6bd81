package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Realtime drives tasks from wall-clock tickers. Ticker goroutines never
// call fn themselves: each firing is queued on Tasks and the consumer runs
// it. A task cancelled while a firing sits in the queue does not run.
type Realtime struct {
	tasks chan func()
}

// NewRealtime creates a scheduler whose task queue holds up to buffer
// pending firings. Firings beyond that are dropped until the consumer
// catches up.
func NewRealtime(buffer int) *Realtime {
	if buffer < 1 {
		buffer = 1
	}
	return &Realtime{tasks: make(chan func(), buffer)}
}

// Tasks is the queue the consumer drains. Run each received func on the
// goroutine that owns the scheduled state.
func (r *Realtime) Tasks() <-chan func() {
	return r.tasks
}

func (r *Realtime) Every(interval time.Duration, fn func()) Cancel {
	done := make(chan struct{})
	var stopped atomic.Bool

	run := func() {
		if !stopped.Load() {
			fn()
		}
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				select {
				case r.tasks <- run:
				default:
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stopped.Store(true)
			close(done)
		})
	}
}
