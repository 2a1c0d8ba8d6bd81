package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/trashsort/internal/cli/formatter"
	"github.com/alexanderramin/trashsort/internal/domain"
	"github.com/alexanderramin/trashsort/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const countdownBarWidth = 20

// taskMsg carries one countdown firing from the scheduler into Update, so
// the engine only ever runs on the bubbletea event loop.
type taskMsg struct {
	run func()
}

// feedbackDoneMsg reports that an item's feedback animation finished.
// sessionID guards against completions from an earlier play-through.
type feedbackDoneMsg struct {
	sessionID string
	itemID    int
}

// gameModel is the bubbletea front end for a game.Engine. It never
// changes engine state except through the Engine request methods.
type gameModel struct {
	engine   *game.Engine
	tasks    <-chan func()
	feedback time.Duration
	keys     gameKeys

	cursor   int
	width    int
	notice   string
	quitting bool
}

func newGameModel(engine *game.Engine, tasks <-chan func(), feedback time.Duration) gameModel {
	return gameModel{
		engine:   engine,
		tasks:    tasks,
		feedback: feedback,
		keys:     defaultGameKeys(),
		notice:   "Press s to start.",
	}
}

// waitForTask blocks until the scheduler queues a firing. A nil queue
// yields no command.
func waitForTask(tasks <-chan func()) tea.Cmd {
	if tasks == nil {
		return nil
	}
	return func() tea.Msg {
		run, ok := <-tasks
		if !ok {
			return nil
		}
		return taskMsg{run: run}
	}
}

func (m gameModel) Init() tea.Cmd {
	return waitForTask(m.tasks)
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case taskMsg:
		wasActive := m.engine.Snapshot().Active
		msg.run()
		if snap := m.engine.Snapshot(); wasActive && snap.Phase == domain.PhaseEnded {
			m.notice = fmt.Sprintf("Time's up! Final score: %d. Press s to play again.", snap.Score)
		}
		return m, waitForTask(m.tasks)

	case feedbackDoneMsg:
		if msg.sessionID == m.engine.Snapshot().SessionID {
			m.engine.NotifyFeedbackComplete(msg.itemID)
			m.clampCursor()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m gameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k := msg.String(); k {
	case "ctrl+c", "q":
		m.engine.Close()
		m.quitting = true
		return m, tea.Quit

	case "s":
		snap := m.engine.RequestStart()
		if snap.Active {
			m.notice = "Go! Sort everything before the clock runs out."
			m.cursor = 0
			m.clampCursor()
		} else {
			m.notice = "Game reset. Press s to start."
		}

	case "left", "h":
		m.moveCursor(-1)

	case "right", "l":
		m.moveCursor(1)

	case " ", "space", "enter":
		if id, ok := m.selectedID(); ok {
			if v, ok := m.engine.RequestDragStart(id); ok {
				m.notice = fmt.Sprintf("Holding %s %s. Drop it in a bin.", v.Icon, v.Label)
			}
		}

	case "esc":
		if id := m.engine.Snapshot().DraggedID; id != 0 {
			if _, ok := m.engine.RequestDragCancel(id); ok {
				m.notice = "Put it back."
			}
		}

	case "1", "2", "3":
		return m.drop(domain.Categories()[k[0]-'1'])
	}
	return m, nil
}

// drop sends the held item, or the selected one when nothing is held, to
// the target bin. The engine ignores drops without a matching drag.
func (m gameModel) drop(target domain.Category) (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()
	id := snap.DraggedID
	if id == 0 {
		var ok bool
		if id, ok = m.selectedID(); !ok {
			return m, nil
		}
	}

	before := snap.Score
	v, ok := m.engine.RequestDrop(id, target)
	if !ok {
		return m, nil
	}

	delta := m.engine.Snapshot().Score - before
	if v.State == domain.ItemCorrect {
		m.notice = formatter.StyleGreen.Render(fmt.Sprintf("Correct! %s goes in %s. %+d", v.Label, target, delta))
	} else {
		m.notice = formatter.StyleRed.Render(fmt.Sprintf("Wrong bin: %s is %s. %+d", v.Label, v.Category, delta))
	}
	return m, m.feedbackCmd(snap.SessionID, id)
}

// feedbackCmd reports completion after the feedback animation. With no
// delay it reports immediately.
func (m gameModel) feedbackCmd(sessionID string, id int) tea.Cmd {
	done := feedbackDoneMsg{sessionID: sessionID, itemID: id}
	if m.feedback <= 0 {
		return func() tea.Msg { return done }
	}
	return tea.Tick(m.feedback, func(time.Time) tea.Msg { return done })
}

func (m *gameModel) selectedID() (int, bool) {
	items := m.engine.Snapshot().Items
	if m.cursor < 0 || m.cursor >= len(items) || !items[m.cursor].Visible {
		return 0, false
	}
	return items[m.cursor].ID, true
}

// moveCursor steps over hidden items so the cursor always sits on
// something that can be picked up.
func (m *gameModel) moveCursor(delta int) {
	items := m.engine.Snapshot().Items
	for i := m.cursor + delta; i >= 0 && i < len(items); i += delta {
		if items[i].Visible {
			m.cursor = i
			return
		}
	}
}

// clampCursor moves the cursor off a hidden item, preferring the next one
// to the right.
func (m *gameModel) clampCursor() {
	items := m.engine.Snapshot().Items
	if m.cursor >= 0 && m.cursor < len(items) && items[m.cursor].Visible {
		return
	}
	for _, delta := range []int{1, -1} {
		for i := m.cursor + delta; i >= 0 && i < len(items); i += delta {
			if items[i].Visible {
				m.cursor = i
				return
			}
		}
	}
}

func (m gameModel) View() string {
	if m.quitting {
		return ""
	}
	snap := m.engine.Snapshot()

	var b strings.Builder
	b.WriteString(formatter.Header("Trash Sort"))
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatScoreLine(snap, countdownBarWidth))
	b.WriteString("\n\n")
	b.WriteString(formatter.RenderItems(snap.Items, m.cursor))
	b.WriteString("\n")
	b.WriteString(formatter.RenderBins(snap.DraggedID != 0))
	b.WriteString("\n\n")
	b.WriteString(m.notice)
	b.WriteString("\n\n")

	var hints []string
	for _, kb := range m.keys.shortHelp(snap.Active, snap.DraggedID != 0) {
		hints = append(hints, formatter.Dim(kb.Help().Key+": "+kb.Help().Desc))
	}
	sep := formatter.StyleDim.Render(strings.Repeat("─", max(m.width, 20)))
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, sep, strings.Join(hints, "  ")))

	return b.String()
}
