package domain

type Category string

const (
	CategoryOrganic Category = "organic"
	CategoryPlastic Category = "plastic"
	CategoryPaper   Category = "paper"
)

// Categories returns every bin category in display order.
func Categories() []Category {
	return []Category{CategoryOrganic, CategoryPlastic, CategoryPaper}
}

// Valid reports whether c is one of the known bin categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryOrganic, CategoryPlastic, CategoryPaper:
		return true
	}
	return false
}

// ItemState is the classification state of a single item.
type ItemState string

const (
	ItemDefault   ItemState = "default"
	ItemDragging  ItemState = "dragging"
	ItemCorrect   ItemState = "correct"
	ItemIncorrect ItemState = "incorrect"
)

// Phase is the lifecycle position of a session.
type Phase string

const (
	PhaseIdle   Phase = "idle"
	PhaseActive Phase = "active"
	PhaseEnded  Phase = "ended"
)
