package game

import (
	"github.com/alexanderramin/trashsort/internal/clock"
	"github.com/alexanderramin/trashsort/internal/domain"
)

// Engine is the boundary the presentation layer talks to. It forwards
// lifecycle requests to the Session and gestures to the Classifier.
type Engine struct {
	session    *Session
	classifier *Classifier
}

// NewEngine builds an idle engine over a copy of roster.
func NewEngine(roster []domain.Item, rules Rules, sched clock.Scheduler, opts ...Option) (*Engine, error) {
	s, err := NewSession(roster, rules, sched, opts...)
	if err != nil {
		return nil, err
	}
	return &Engine{session: s, classifier: NewClassifier(s)}, nil
}

// RequestStart starts a session, or resets it when one is already running.
func (e *Engine) RequestStart() Snapshot {
	e.session.Start()
	return e.session.Snapshot()
}

func (e *Engine) RequestDragStart(id int) (ItemView, bool) {
	return e.classifier.DragStart(id)
}

func (e *Engine) RequestDrop(id int, target domain.Category) (ItemView, bool) {
	return e.classifier.Drop(id, target)
}

func (e *Engine) RequestDragCancel(id int) (ItemView, bool) {
	return e.classifier.DragCancel(id)
}

func (e *Engine) NotifyFeedbackComplete(id int) (ItemView, bool) {
	return e.classifier.FeedbackComplete(id)
}

// Snapshot returns the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	return e.session.Snapshot()
}

// Close releases the countdown task. Call it when the presentation layer
// goes away.
func (e *Engine) Close() {
	e.session.Close()
}
