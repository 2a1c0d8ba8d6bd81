package testutil

import (
	"fmt"

	"github.com/alexanderramin/trashsort/internal/domain"
)

// NewTestItem returns a visible default item with a generated label.
func NewTestItem(id int, category domain.Category) domain.Item {
	return domain.NewItem(id, category, "•", fmt.Sprintf("item-%d", id))
}

// NewTestRoster returns one item per category argument, numbered from 1.
func NewTestRoster(categories ...domain.Category) []domain.Item {
	items := make([]domain.Item, len(categories))
	for i, c := range categories {
		items[i] = NewTestItem(i+1, c)
	}
	return items
}

// MixedRoster returns organic, plastic and paper items with IDs 1, 2 and 3.
func MixedRoster() []domain.Item {
	return NewTestRoster(domain.CategoryOrganic, domain.CategoryPlastic, domain.CategoryPaper)
}

// SequentialIDs returns an ID generator yielding "s1", "s2", ... so tests
// can assert on play-through IDs.
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}
}
