package game

import "github.com/alexanderramin/trashsort/internal/domain"

// Classifier applies drag and drop gestures to a session's items.
// Every method returns the item's resulting view and whether the gesture
// changed anything; rejected gestures leave the session untouched.
type Classifier struct {
	s *Session
}

// NewClassifier binds a classifier to s.
func NewClassifier(s *Session) *Classifier {
	return &Classifier{s: s}
}

// DragStart picks up an item. Only a visible, default item of an active
// session can be picked up. Picking up a second item puts the first one
// back, so at most one item is ever in flight.
func (c *Classifier) DragStart(id int) (ItemView, bool) {
	it := c.s.item(id)
	if it == nil {
		return ItemView{}, false
	}
	if !c.s.Active() || !it.CanDrag() {
		return viewOf(it), false
	}

	if prev := c.s.dragged; prev != nil {
		prev.CancelDrag()
		c.s.dragged = nil
		c.s.emit(itemEvent(EventDragCancelled, prev))
	}

	it.BeginDrag()
	c.s.dragged = it
	c.s.emit(itemEvent(EventDragStarted, it))
	return viewOf(it), true
}

// DragCancel puts the dragged item back without classifying it. It is
// accepted in any phase so a gesture in flight when time runs out can
// still settle.
func (c *Classifier) DragCancel(id int) (ItemView, bool) {
	it := c.s.item(id)
	if it == nil {
		return ItemView{}, false
	}
	if c.s.dragged != it || !it.CancelDrag() {
		return viewOf(it), false
	}
	c.s.dragged = nil
	c.s.emit(itemEvent(EventDragCancelled, it))
	return viewOf(it), true
}

// Drop classifies the dragged item against the target bin. The match test
// is a single equality between the item's category and target.
func (c *Classifier) Drop(id int, target domain.Category) (ItemView, bool) {
	it := c.s.item(id)
	if it == nil {
		return ItemView{}, false
	}
	if !c.s.Active() || c.s.dragged != it || !target.Valid() {
		return viewOf(it), false
	}

	correct := it.Category() == target
	it.Resolve(correct)
	c.s.dragged = nil

	var delta int
	if correct {
		delta = c.s.AwardCorrect()
	} else {
		delta = c.s.AwardIncorrect()
	}

	e := itemEvent(EventItemClassified, it)
	e.Target = target
	e.Correct = correct
	e.Delta = delta
	c.s.emit(e)
	return viewOf(it), true
}

// FeedbackComplete settles an item after its correct or incorrect
// feedback has finished playing.
func (c *Classifier) FeedbackComplete(id int) (ItemView, bool) {
	it := c.s.item(id)
	if it == nil {
		return ItemView{}, false
	}
	if !it.Settle() {
		return viewOf(it), false
	}
	c.s.emit(itemEvent(EventFeedbackSettled, it))
	return viewOf(it), true
}

func itemEvent(kind EventKind, it *domain.Item) Event {
	return Event{Kind: kind, ItemID: it.ID, Category: it.Category()}
}
