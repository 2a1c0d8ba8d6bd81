package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/trashsort/internal/clock"
	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/alexanderramin/trashsort/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(t *testing.T, snap game.Snapshot, id int) game.ItemView {
	t.Helper()
	v, ok := snap.Item(id)
	require.True(t, ok, "item %d", id)
	return v
}

func TestGameModel_StartsIdle(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())

	snap := d.Snapshot()
	assert.Equal(t, domain.PhaseIdle, snap.Phase)
	assert.Contains(t, d.View(), "Press s to start")
	assert.Contains(t, d.View(), "s: start/restart")
}

func TestGameModel_CorrectDropHidesItem(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())
	d.Press("s")
	require.True(t, d.Snapshot().Active)

	// Item 2 is the plastic bottle; bin 2 is plastic.
	d.Select(2)
	d.Press("space")
	assert.Equal(t, 2, d.Snapshot().DraggedID)
	assert.Contains(t, d.View(), "[holding]")

	d.Press("2")
	snap := d.Snapshot()
	assert.Equal(t, 10, snap.Score)
	assert.Zero(t, snap.DraggedID)
	bottle := item(t, snap, 2)
	assert.False(t, bottle.Visible, "zero feedback delay settles immediately")
	assert.Equal(t, domain.ItemDefault, bottle.State)
	assert.Contains(t, d.Notice(), "Correct!")
	assert.NotEqual(t, 1, d.Cursor(), "cursor leaves the hidden slot")
}

func TestGameModel_WrongDropClampedAndStaysVisible(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())
	d.Press("s")

	// Item 1 is organic; bin 3 is paper.
	d.Select(1)
	d.PressAll("space", "3")

	snap := d.Snapshot()
	assert.Equal(t, 0, snap.Score)
	apple := item(t, snap, 1)
	assert.True(t, apple.Visible)
	assert.Equal(t, domain.ItemDefault, apple.State)
	assert.Contains(t, d.Notice(), "Wrong bin")
}

func TestGameModel_DropWithoutPickUpIsIgnored(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())
	d.Press("s")
	before := d.Snapshot()

	d.Press("1")
	assert.Equal(t, before, d.Snapshot())
}

func TestGameModel_EscPutsItemBack(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())
	d.Press("s")
	d.PressAll("space", "esc")

	snap := d.Snapshot()
	assert.Zero(t, snap.DraggedID)
	assert.Equal(t, domain.ItemDefault, item(t, snap, 1).State)
	assert.Equal(t, "Put it back.", d.Notice())
}

func TestGameModel_CountdownEndsGame(t *testing.T) {
	rules := game.DefaultRules()
	rules.Duration = 3
	d := NewTestDriver(t, rules)
	d.Press("s")

	d.Tick(2)
	assert.Equal(t, 1, d.Snapshot().TimeLeft)
	d.Tick(1)

	snap := d.Snapshot()
	assert.Equal(t, domain.PhaseEnded, snap.Phase)
	assert.Contains(t, d.Notice(), "Time's up! Final score: 0")
	assert.Zero(t, d.Sched.Live())

	d.Tick(5)
	assert.Equal(t, 0, d.Snapshot().TimeLeft)
	assert.Equal(t, domain.PhaseEnded, d.Snapshot().Phase)
}

func TestGameModel_RestartToggle(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())
	d.Press("s")
	d.Tick(4)
	d.Press("s")

	assert.Equal(t, domain.PhaseIdle, d.Snapshot().Phase)
	assert.Contains(t, d.Notice(), "Game reset")
	assert.Zero(t, d.Sched.Live())

	d.Press("s")
	assert.Equal(t, 60, d.Snapshot().TimeLeft)
	assert.Equal(t, 1, d.Sched.Live())
}

func TestGameModel_StaleFeedbackIgnored(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())
	d.Press("s")
	old := d.Snapshot().SessionID
	d.PressAll("s", "s")
	require.NotEqual(t, old, d.Snapshot().SessionID)

	d.Select(1)
	eng := d.gameModel().engine
	eng.RequestDragStart(1)
	eng.RequestDrop(1, domain.CategoryOrganic)

	d.Send(feedbackDoneMsg{sessionID: old, itemID: 1})
	assert.Equal(t, domain.ItemCorrect, item(t, d.Snapshot(), 1).State, "completion from a previous round")

	d.Send(feedbackDoneMsg{sessionID: d.Snapshot().SessionID, itemID: 1})
	assert.False(t, item(t, d.Snapshot(), 1).Visible)
}

func TestGameModel_CursorSkipsHiddenItems(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())
	d.Press("s")

	d.Select(2)
	d.PressAll("space", "2")
	d.Select(1)
	d.Press("right")
	assert.Equal(t, 2, d.Cursor(), "index 1 (item 2) is hidden")
	d.Press("left")
	assert.Equal(t, 0, d.Cursor())
}

func TestGameModel_SortEverything(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())
	d.Press("s")

	bins := map[domain.Category]string{
		domain.CategoryOrganic: "1",
		domain.CategoryPlastic: "2",
		domain.CategoryPaper:   "3",
	}
	for _, it := range d.Snapshot().Items {
		d.Select(it.ID)
		d.PressAll("space", bins[it.Category])
	}

	snap := d.Snapshot()
	assert.Equal(t, 60, snap.Score)
	assert.Zero(t, snap.VisibleCount())
}

func TestGameModel_QuitClosesEngine(t *testing.T) {
	d := NewTestDriver(t, game.DefaultRules())
	d.Press("s")
	d.Press("q")

	assert.True(t, d.Quitting)
	assert.Zero(t, d.Sched.Live())
	assert.Empty(t, d.View())
}

func TestGameModel_FeedbackDelayUsesTick(t *testing.T) {
	engine, err := game.NewEngine(domain.DefaultRoster(), game.DefaultRules(), clock.NewManual())
	require.NoError(t, err)
	defer engine.Close()

	m := newGameModel(engine, nil, time.Second)
	engine.RequestStart()
	engine.RequestDragStart(2)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	require.NotNil(t, cmd)
	assert.Equal(t, domain.ItemCorrect, item(t, model.(gameModel).engine.Snapshot(), 2).State,
		"feedback still playing until the tick fires")
}

func TestWaitForTask(t *testing.T) {
	assert.Nil(t, waitForTask(nil))

	ch := make(chan func(), 1)
	ran := false
	ch <- func() { ran = true }
	msg := waitForTask(ch)()
	tm, ok := msg.(taskMsg)
	require.True(t, ok)
	tm.run()
	assert.True(t, ran)

	close(ch)
	assert.Nil(t, waitForTask(ch)())
}
