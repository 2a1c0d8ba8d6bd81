package clock

import "time"

// Manual is a deterministic Scheduler for tests. Tasks run only when Fire
// is called.
type Manual struct {
	tasks  []*manualTask
	nextID int
}

type manualTask struct {
	id       int
	interval time.Duration
	fn       func()
	live     bool
}

// NewManual creates an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Every(interval time.Duration, fn func()) Cancel {
	m.nextID++
	task := &manualTask{id: m.nextID, interval: interval, fn: fn, live: true}
	m.tasks = append(m.tasks, task)
	return func() { task.live = false }
}

// Fire runs every live task once, in scheduling order. Tasks cancelled by
// an earlier task in the same pass are skipped.
func (m *Manual) Fire() {
	for _, task := range append([]*manualTask(nil), m.tasks...) {
		if task.live {
			task.fn()
		}
	}
}

// FireN calls Fire n times.
func (m *Manual) FireN(n int) {
	for range n {
		m.Fire()
	}
}

// Live returns the number of tasks that have not been cancelled.
func (m *Manual) Live() int {
	n := 0
	for _, task := range m.tasks {
		if task.live {
			n++
		}
	}
	return n
}

// Scheduled returns how many tasks were ever started.
func (m *Manual) Scheduled() int {
	return len(m.tasks)
}

// LastInterval returns the interval of the most recent task, or zero.
func (m *Manual) LastInterval() time.Duration {
	if len(m.tasks) == 0 {
		return 0
	}
	return m.tasks[len(m.tasks)-1].interval
}
