package aetherbox

import "fmt"

// CategoryID identifies a navigation category.
type CategoryID int

const (
	CategoryInfo CategoryID = iota
	CategorySettings
)

// Category is one entry of the navigation column.
type Category struct {
	ID          CategoryID
	Label       string
	Description string // Tooltip, empty for none
	Section     Section
}

// Selection is an exclusive choice over a fixed set of categories.
// Clicking the active category clears the selection; clicking another one
// moves the selection there.
type Selection struct {
	active    CategoryID
	hasActive bool
	open      map[CategoryID]bool
}

// NewSelection creates a selection over ids with nothing selected.
func NewSelection(ids ...CategoryID) *Selection {
	s := &Selection{open: make(map[CategoryID]bool, len(ids))}
	for _, id := range ids {
		s.open[id] = false
	}
	return s
}

// Toggle flips the category's open flag and keeps the selection exclusive.
// It panics on an id the selection was not created with.
func (s *Selection) Toggle(id CategoryID) {
	wasOpen, ok := s.open[id]
	if !ok {
		panic(fmt.Sprintf("aetherbox: unknown category %d", id))
	}
	if wasOpen {
		s.open[id] = false
		if s.hasActive && s.active == id {
			s.hasActive = false
		}
		return
	}
	for other := range s.open {
		s.open[other] = false
	}
	s.open[id] = true
	s.active = id
	s.hasActive = true
}

// Active returns the selected category, if any.
func (s *Selection) Active() (CategoryID, bool) {
	return s.active, s.hasActive
}

// IsOpen reports whether the category's selectable renders as selected.
func (s *Selection) IsOpen(id CategoryID) bool {
	return s.open[id]
}

// Clear deselects everything.
func (s *Selection) Clear() {
	for id := range s.open {
		s.open[id] = false
	}
	s.hasActive = false
}
