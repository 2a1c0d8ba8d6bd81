package cli

import (
	"testing"

	"github.com/alexanderramin/trashsort/internal/clock"
	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/alexanderramin/trashsort/internal/game"
	"github.com/alexanderramin/trashsort/internal/teatest"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to the game model and the
// manual countdown behind it.
type TestDriver struct {
	*teatest.Driver
	Sched *clock.Manual
}

// NewTestDriver builds a game over the default roster with a manual
// scheduler and zero feedback delay, so completions drain synchronously.
func NewTestDriver(t *testing.T, rules game.Rules) *TestDriver {
	t.Helper()

	sched := clock.NewManual()
	engine, err := game.NewEngine(domain.DefaultRoster(), rules, sched)
	require.NoError(t, err)
	t.Cleanup(engine.Close)

	m := newGameModel(engine, nil, 0)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d, Sched: sched}
}

func (d *TestDriver) gameModel() gameModel {
	return d.Model.(gameModel)
}

// Snapshot returns the engine state behind the model.
func (d *TestDriver) Snapshot() game.Snapshot {
	return d.gameModel().engine.Snapshot()
}

// Cursor returns the selected item index.
func (d *TestDriver) Cursor() int {
	return d.gameModel().cursor
}

// Notice returns the current status line.
func (d *TestDriver) Notice() string {
	return d.gameModel().notice
}

// Tick fires the countdown n times through the model, the same path a
// realtime firing takes.
func (d *TestDriver) Tick(n int) {
	d.T.Helper()
	for range n {
		d.Send(taskMsg{run: d.Sched.Fire})
	}
}

// Select moves the cursor onto the item with the given ID.
func (d *TestDriver) Select(id int) {
	d.T.Helper()
	for range len(d.Snapshot().Items) {
		d.Press("left")
	}
	for i, it := range d.Snapshot().Items {
		if it.ID == id {
			require.True(d.T, it.Visible, "item %d is hidden", id)
			for d.Cursor() < i {
				before := d.Cursor()
				d.Press("right")
				require.NotEqual(d.T, before, d.Cursor(), "cursor stuck before item %d", id)
			}
			return
		}
	}
	d.T.Fatalf("no item %d", id)
}
