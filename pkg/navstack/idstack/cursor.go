package idstack

import (
	"fmt"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
)

// Cursor walks a stack in push order and allows the current entry to be removed
// without skipping its successor.
//
//	cur := s.Cursor()
//	for cur.Next() {
//	    if shouldDrop(cur.Value()) {
//	        _ = s.RemoveCursor(cur)
//	    }
//	}
type Cursor[T any] struct {
	stack *IDStack[T]
	pos   int
}

// Cursor returns a cursor positioned before the first entry.
func (s *IDStack[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{stack: s, pos: -1}
}

// Next advances to the next entry and reports whether one exists.
func (c *Cursor[T]) Next() bool {
	if c.pos+1 >= len(c.stack.entries) {
		c.pos = len(c.stack.entries)
		return false
	}
	c.pos++
	return true
}

func (c *Cursor[T]) valid() bool {
	return c.pos >= 0 && c.pos < len(c.stack.entries)
}

// ID returns the id of the current entry, or "" if the cursor is not on an entry.
func (c *Cursor[T]) ID() string {
	if !c.valid() {
		return ""
	}
	return c.stack.entries[c.pos].ID
}

// Value returns the value of the current entry.
func (c *Cursor[T]) Value() T {
	if !c.valid() {
		var zero T
		return zero
	}
	return c.stack.entries[c.pos].Value
}

// RemoveCursor removes the entry under the cursor. The cursor steps back so the
// following Next lands on the removed entry's successor.
func (s *IDStack[T]) RemoveCursor(c *Cursor[T]) error {
	if c.stack != s {
		return fmt.Errorf("idstack: cursor belongs to another stack: %w", navstack.ErrInvalidArgument)
	}
	if !c.valid() {
		return fmt.Errorf("idstack: cursor at %d of %d: %w", c.pos, len(s.entries), navstack.ErrIndexOutOfRange)
	}
	s.removeAt(c.pos)
	c.pos--
	return nil
}
