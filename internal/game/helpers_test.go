package game

import (
	"testing"

	"github.com/alexanderramin/trashsort/internal/clock"
	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/alexanderramin/trashsort/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []Event
}

func (r *recordingObserver) OnEvent(e Event) { r.events = append(r.events, e) }

func (r *recordingObserver) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recordingObserver) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

type fixture struct {
	session *Session
	clf     *Classifier
	sched   *clock.Manual
	obs     *recordingObserver
}

func newFixture(t *testing.T, roster []domain.Item, rules Rules) *fixture {
	t.Helper()
	sched := clock.NewManual()
	obs := &recordingObserver{}
	s, err := NewSession(roster, rules, sched,
		WithObserver(obs),
		WithIDGenerator(testutil.SequentialIDs()),
	)
	require.NoError(t, err)
	return &fixture{session: s, clf: NewClassifier(s), sched: sched, obs: obs}
}

func newDefaultFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixture(t, testutil.MixedRoster(), DefaultRules())
}

func shortRules(duration int) Rules {
	r := DefaultRules()
	r.Duration = duration
	return r
}
