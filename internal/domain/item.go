package domain

import (
	"fmt"
	"strings"
)

// Item is one draggable piece of trash. Its category is fixed at
// construction; state and visibility change only through the methods
// below.
type Item struct {
	ID    int
	Icon  string
	Label string

	category Category
	state    ItemState
	visible  bool
}

// NewItem returns a visible item in the default state.
func NewItem(id int, category Category, icon, label string) Item {
	return Item{
		ID:       id,
		Icon:     icon,
		Label:    label,
		category: category,
		state:    ItemDefault,
		visible:  true,
	}
}

func (it *Item) Category() Category { return it.category }
func (it *Item) State() ItemState   { return it.state }
func (it *Item) Visible() bool      { return it.visible }

// CanDrag reports whether the item may be picked up.
func (it *Item) CanDrag() bool {
	return it.visible && it.state == ItemDefault
}

// BeginDrag moves a default, visible item into the dragging state.
func (it *Item) BeginDrag() bool {
	if !it.CanDrag() {
		return false
	}
	it.state = ItemDragging
	return true
}

// CancelDrag returns a dragging item to default without classification.
func (it *Item) CancelDrag() bool {
	if it.state != ItemDragging {
		return false
	}
	it.state = ItemDefault
	return true
}

// Resolve records the result of a drop on a dragging item.
func (it *Item) Resolve(correct bool) bool {
	if it.state != ItemDragging {
		return false
	}
	if correct {
		it.state = ItemCorrect
	} else {
		it.state = ItemIncorrect
	}
	return true
}

// Settle ends the feedback sequence. A correctly sorted item is hidden for
// the rest of the session; an incorrect one goes back into play.
func (it *Item) Settle() bool {
	switch it.state {
	case ItemCorrect:
		it.visible = false
	case ItemIncorrect:
	default:
		return false
	}
	it.state = ItemDefault
	return true
}

// Restore puts the item back to its starting condition. Only session
// start and reset call it.
func (it *Item) Restore() {
	it.state = ItemDefault
	it.visible = true
}

// ParseCategory converts user input such as "Plastic" into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
