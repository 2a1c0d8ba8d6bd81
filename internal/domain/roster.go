package domain

import "fmt"

// DefaultRoster returns the six items of the standard game.
func DefaultRoster() []Item {
	return []Item{
		NewItem(1, CategoryOrganic, "🍎", "Manzana"),
		NewItem(2, CategoryPlastic, "🧴", "Botella"),
		NewItem(3, CategoryPaper, "📰", "Periódico"),
		NewItem(4, CategoryOrganic, "🍌", "Plátano"),
		NewItem(5, CategoryPlastic, "🥤", "Vaso"),
		NewItem(6, CategoryPaper, "📦", "Caja"),
	}
}

// ValidateRoster checks that items is non-empty, that IDs are positive and
// unique, and that every category is a known bin.
func ValidateRoster(items []Item) error {
	if len(items) == 0 {
		return ErrEmptyRoster
	}
	seen := make(map[int]bool, len(items))
	for i := range items {
		it := &items[i]
		if it.ID <= 0 {
			return fmt.Errorf("item id %d must be positive", it.ID)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateItem, it.ID)
		}
		seen[it.ID] = true
		if !it.category.Valid() {
			return fmt.Errorf("item %d: %w: %q", it.ID, ErrUnknownCategory, it.category)
		}
	}
	return nil
}

// CountByCategory tallies roster items per bin.
func CountByCategory(items []Item) map[Category]int {
	counts := make(map[Category]int, 3)
	for i := range items {
		counts[items[i].category]++
	}
	return counts
}
