// Package favorite models the user's favorite channels as an ordered set of ids.
package favorite

import (
	"errors"
	"slices"
	"strings"
)

// StorageKey is the fixed key under which favorites are persisted.
const StorageKey = "streamline_favorites"

// ErrEmptyID is returned when a favorite id is empty or whitespace.
var ErrEmptyID = errors.New("favorite channel id cannot be empty")

// Set is an insertion-ordered set of channel ids.
// The zero value is an empty set ready to use.
type Set struct {
	ids []string
}

// NewSet builds a set from ids, dropping blanks and duplicates while keeping
// first-seen order.
func NewSet(ids ...string) Set {
	var s Set
	for _, id := range ids {
		_ = s.add(id)
	}
	return s
}

// IDs returns a copy of the ids in insertion order.
func (s Set) IDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Len returns the number of favorites.
func (s Set) Len() int {
	return len(s.ids)
}

// Contains reports whether id is a favorite.
func (s Set) Contains(id string) bool {
	return slices.Contains(s.ids, id)
}

// Add returns a set with id appended. Adding an existing id is a no-op.
func (s Set) Add(id string) (Set, error) {
	next := Set{ids: s.IDs()}
	if err := next.add(id); err != nil {
		return s, err
	}
	return next, nil
}

// Remove returns a set without id. Removing a missing id is a no-op.
func (s Set) Remove(id string) Set {
	return Set{ids: slices.DeleteFunc(s.IDs(), func(v string) bool { return v == id })}
}

// Toggle removes id when present and appends it otherwise.
func (s Set) Toggle(id string) (Set, error) {
	if s.Contains(id) {
		return s.Remove(id), nil
	}
	return s.Add(id)
}

func (s *Set) add(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	if !slices.Contains(s.ids, id) {
		s.ids = append(s.ids, id)
	}
	return nil
}
