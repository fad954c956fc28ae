// Package idstack provides an order preserving stack whose entries are keyed by
// a unique string id.
//
// IDStack is the storage behind a stack controller: screens are pushed and
// popped in LIFO order, but can also be looked up, inserted or removed by id at
// any position. Ids are unique within a stack at all times.
//
// IDStack is not safe for concurrent mutation. It is owned by exactly one
// controller which mutates it from a single logical sequence.
package idstack

import (
	"fmt"
	"iter"
	"slices"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
)

// Entry is a single (id, value) pair in the stack.
type Entry[T any] struct {
	ID    string
	Value T
}

// IDStack is an ordered sequence of uniquely keyed entries. The last entry is the top.
type IDStack[T any] struct {
	entries []Entry[T]
	index   map[string]T
}

// New creates a new empty stack.
func New[T any]() *IDStack[T] {
	return &IDStack[T]{
		entries: make([]Entry[T], 0),
		index:   make(map[string]T),
	}
}

// From creates a stack from parallel id and value lists, oldest first.
// A repeated id is a programming error and is returned as ErrDuplicateID.
func From[T any](ids []string, values []T) (*IDStack[T], error) {
	if len(ids) != len(values) {
		return nil, fmt.Errorf("idstack: %d ids for %d values: %w", len(ids), len(values), navstack.ErrInvalidArgument)
	}
	s := New[T]()
	for i, id := range ids {
		if err := s.Push(id, values[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Push appends a new entry which becomes the top.
// Fails with ErrDuplicateID if the id is already present.
func (s *IDStack[T]) Push(id string, value T) error {
	if s.Contains(id) {
		return fmt.Errorf("idstack: push %q: %w", id, navstack.ErrDuplicateID)
	}
	s.entries = append(s.entries, Entry[T]{ID: id, Value: value})
	s.index[id] = value
	return nil
}

// Insert places a new entry at the given position, shifting later entries up.
// An index equal to Len appends.
func (s *IDStack[T]) Insert(index int, id string, value T) error {
	if s.Contains(id) {
		return fmt.Errorf("idstack: insert %q: %w", id, navstack.ErrDuplicateID)
	}
	if index < 0 || index > len(s.entries) {
		return fmt.Errorf("idstack: insert at %d of %d: %w", index, len(s.entries), navstack.ErrIndexOutOfRange)
	}
	s.entries = slices.Insert(s.entries, index, Entry[T]{ID: id, Value: value})
	s.index[id] = value
	return nil
}

// Pop removes and returns the top entry.
// Fails with ErrEmptyStack if there are no entries.
func (s *IDStack[T]) Pop() (Entry[T], error) {
	if len(s.entries) == 0 {
		return Entry[T]{}, fmt.Errorf("idstack: pop: %w", navstack.ErrEmptyStack)
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = Entry[T]{}
	s.entries = s.entries[:len(s.entries)-1]
	delete(s.index, top.ID)
	return top, nil
}

// Peek returns the top entry without removing it.
// The boolean is false if the stack is empty.
func (s *IDStack[T]) Peek() (Entry[T], bool) {
	if len(s.entries) == 0 {
		return Entry[T]{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Get returns the value stored under id.
func (s *IDStack[T]) Get(id string) (T, error) {
	v, ok := s.index[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("idstack: get %q: %w", id, navstack.ErrNotFound)
	}
	return v, nil
}

// At returns the entry at position index, 0 being the bottom.
func (s *IDStack[T]) At(index int) (Entry[T], error) {
	if index < 0 || index >= len(s.entries) {
		return Entry[T]{}, fmt.Errorf("idstack: at %d of %d: %w", index, len(s.entries), navstack.ErrIndexOutOfRange)
	}
	return s.entries[index], nil
}

// IndexOf returns the position of id, or -1 if it is not present.
func (s *IDStack[T]) IndexOf(id string) int {
	if !s.Contains(id) {
		return -1
	}
	return slices.IndexFunc(s.entries, func(e Entry[T]) bool { return e.ID == id })
}

// Remove deletes the entry with the given id wherever it sits,
// preserving the order of the remaining entries.
func (s *IDStack[T]) Remove(id string) error {
	i := s.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("idstack: remove %q: %w", id, navstack.ErrNotFound)
	}
	s.removeAt(i)
	return nil
}

func (s *IDStack[T]) removeAt(i int) {
	delete(s.index, s.entries[i].ID)
	s.entries = slices.Delete(s.entries, i, i+1)
}

// Contains reports whether an entry with this id is present.
func (s *IDStack[T]) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// IsTop reports whether the entry with this id is the current top.
func (s *IDStack[T]) IsTop(id string) bool {
	top, ok := s.Peek()
	return ok && top.ID == id
}

// Len returns the number of entries.
func (s *IDStack[T]) Len() int {
	return len(s.entries)
}

// IsEmpty returns true if the stack has no entries.
func (s *IDStack[T]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Clear removes all entries.
func (s *IDStack[T]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	clear(s.index)
}

// IDs returns the ids in push order, oldest first.
func (s *IDStack[T]) IDs() []string {
	ids := make([]string, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.ID
	}
	return ids
}

// Values returns the values in push order, oldest first.
func (s *IDStack[T]) Values() []T {
	values := make([]T, len(s.entries))
	for i, e := range s.entries {
		values[i] = e.Value
	}
	return values
}

// All iterates entries in push order, oldest first.
// The stack must not be mutated during iteration; use a Cursor for that.
func (s *IDStack[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, e := range s.entries {
			if !yield(e.ID, e.Value) {
				return
			}
		}
	}
}

func (s *IDStack[T]) String() string {
	return fmt.Sprintf(">%v", s.IDs())
}
