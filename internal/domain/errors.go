package domain

import "errors"

var (
	// ErrUnknownCategory indicates a category string outside the bin set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrDuplicateItem indicates two roster entries share an ID.
	ErrDuplicateItem = errors.New("duplicate item id")

	// ErrEmptyRoster indicates a roster with no items.
	ErrEmptyRoster = errors.New("roster has no items")
)
