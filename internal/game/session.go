package game

import (
	"fmt"

	"github.com/alexanderramin/trashsort/internal/clock"
	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/google/uuid"
)

// Session is one play-through: score, countdown and the item roster.
// It is not safe for concurrent use; every method must be called from the
// goroutine that consumes the scheduler's firings.
type Session struct {
	id    string
	newID func() string
	rules Rules
	sched clock.Scheduler
	obs   Observer

	phase    domain.Phase
	score    int
	timeLeft int

	items   []*domain.Item
	index   map[int]*domain.Item
	dragged *domain.Item

	cancelTick clock.Cancel
	closed     bool
}

// Option configures a Session.
type Option func(*Session)

// WithObserver sets the event sink. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.obs = o
		}
	}
}

// WithIDGenerator replaces the uuid-based play-through ID source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewSession copies roster into a fresh idle session.
func NewSession(roster []domain.Item, rules Rules, sched clock.Scheduler, opts ...Option) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if err := domain.ValidateRoster(roster); err != nil {
		return nil, fmt.Errorf("roster: %w", err)
	}
	if sched == nil {
		return nil, fmt.Errorf("session requires a scheduler")
	}

	s := &Session{
		newID:    func() string { return uuid.New().String() },
		rules:    rules,
		sched:    sched,
		obs:      NoopObserver{},
		phase:    domain.PhaseIdle,
		timeLeft: rules.Duration,
		items:    make([]*domain.Item, len(roster)),
		index:    make(map[int]*domain.Item, len(roster)),
	}
	for _, opt := range opts {
		opt(s)
	}
	for i := range roster {
		it := roster[i]
		it.Restore()
		s.items[i] = &it
		s.index[it.ID] = &it
	}
	s.id = s.newID()
	return s, nil
}

func (s *Session) ID() string          { return s.id }
func (s *Session) Rules() Rules        { return s.rules }
func (s *Session) Phase() domain.Phase { return s.phase }
func (s *Session) Active() bool        { return s.phase == domain.PhaseActive }
func (s *Session) Score() int          { return s.score }
func (s *Session) TimeLeft() int       { return s.timeLeft }

// DraggedID returns the ID of the item currently being dragged, or 0.
func (s *Session) DraggedID() int {
	if s.dragged == nil {
		return 0
	}
	return s.dragged.ID
}

// Start begins a new play-through. Calling Start on an active session
// resets it instead, leaving it idle.
func (s *Session) Start() {
	if s.closed {
		return
	}
	if s.Active() {
		s.Reset()
		return
	}

	s.stopTick()
	s.id = s.newID()
	s.phase = domain.PhaseActive
	s.score = 0
	s.timeLeft = s.rules.Duration
	s.dragged = nil
	s.restoreItems()
	s.cancelTick = s.sched.Every(s.rules.TickInterval, s.Tick)

	s.emit(Event{Kind: EventSessionStarted})
}

// Tick advances the countdown by one step and ends the session when it
// reaches zero. It does nothing unless the session is active.
func (s *Session) Tick() {
	if !s.Active() {
		return
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	if s.timeLeft == 0 {
		s.End()
	}
}

// End stops the countdown and marks the session over. Item states are
// left as they are.
func (s *Session) End() {
	if !s.Active() {
		return
	}
	s.stopTick()
	s.phase = domain.PhaseEnded
	s.emit(Event{Kind: EventSessionEnded})
}

// Reset stops the countdown, leaves the session idle and restores every
// item to visible and default.
func (s *Session) Reset() {
	s.stopTick()
	s.phase = domain.PhaseIdle
	s.dragged = nil
	s.restoreItems()
	s.emit(Event{Kind: EventSessionReset})
}

// AwardCorrect adds the reward and returns the applied delta.
func (s *Session) AwardCorrect() int {
	s.score += s.rules.Reward
	return s.rules.Reward
}

// AwardIncorrect subtracts the penalty without going below zero and
// returns the applied (non-positive) delta.
func (s *Session) AwardIncorrect() int {
	before := s.score
	s.score = max(0, s.score-s.rules.Penalty)
	return s.score - before
}

// Close cancels the countdown for good. Later calls to Start are ignored.
func (s *Session) Close() {
	s.stopTick()
	s.closed = true
}

func (s *Session) stopTick() {
	if s.cancelTick != nil {
		s.cancelTick()
		s.cancelTick = nil
	}
}

func (s *Session) restoreItems() {
	for _, it := range s.items {
		it.Restore()
	}
}

func (s *Session) item(id int) *domain.Item {
	return s.index[id]
}

func (s *Session) emit(e Event) {
	e.SessionID = s.id
	e.Score = s.score
	e.TimeLeft = s.timeLeft
	s.obs.OnEvent(e)
}
