package game

import "github.com/alexanderramin/trashsort/internal/domain"

// ItemView is a read-only copy of one item for rendering.
type ItemView struct {
	ID       int
	Category domain.Category
	Icon     string
	Label    string
	Visible  bool
	State    domain.ItemState
}

// Snapshot is a read-only copy of the whole session for rendering.
type Snapshot struct {
	SessionID string
	Phase     domain.Phase
	Active    bool
	Score     int
	TimeLeft  int
	Duration  int
	DraggedID int
	Items     []ItemView
}

// Item looks up an item view by ID.
func (s Snapshot) Item(id int) (ItemView, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ItemView{}, false
}

// Remaining returns the fraction of the countdown left, in [0, 1].
func (s Snapshot) Remaining() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TimeLeft) / float64(s.Duration)
}

// VisibleCount returns how many items are still on the table.
func (s Snapshot) VisibleCount() int {
	n := 0
	for _, it := range s.Items {
		if it.Visible {
			n++
		}
	}
	return n
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	items := make([]ItemView, len(s.items))
	for i, it := range s.items {
		items[i] = viewOf(it)
	}
	return Snapshot{
		SessionID: s.id,
		Phase:     s.phase,
		Active:    s.Active(),
		Score:     s.score,
		TimeLeft:  s.timeLeft,
		Duration:  s.rules.Duration,
		DraggedID: s.DraggedID(),
		Items:     items,
	}
}

func viewOf(it *domain.Item) ItemView {
	return ItemView{
		ID:       it.ID,
		Category: it.Category(),
		Icon:     it.Icon,
		Label:    it.Label,
		Visible:  it.Visible(),
		State:    it.State(),
	}
}
