// Package view is a minimal, in-memory model of the visual hierarchy a stack
// attaches screens into.
//
// Rendering, measurement and layout live outside navstack. A Surface is only a
// handle for one screen's visual content and a Group is an ordered list of
// attached surfaces. Embedders bridge both to their real view system with the
// Group's attach and detach hooks.
package view

import (
	"fmt"
	"slices"
)

// Behavior tells the hosting group how to lay out an attached surface.
type Behavior int

const (
	BehaviorNone        Behavior = iota // Leave size and position to the surface
	BehaviorMatchParent                 // Fill the group
	BehaviorStack                       // Fill the group, offset below the stack's top bar
)

func (b Behavior) String() string {
	switch b {
	case BehaviorNone:
		return "none"
	case BehaviorMatchParent:
		return "matchParent"
	case BehaviorStack:
		return "stack"
	default:
		return fmt.Sprintf("Behavior(%d)", int(b))
	}
}

// Surface is the visual content owned by a single screen.
type Surface struct {
	id    string
	alpha float64
}

// NewSurface creates a fully opaque surface.
func NewSurface(id string) *Surface {
	return &Surface{id: id, alpha: 1}
}

func (s *Surface) ID() string {
	return s.id
}

func (s *Surface) Alpha() float64 {
	return s.alpha
}

// SetAlpha sets the opacity, 0 being invisible.
func (s *Surface) SetAlpha(alpha float64) {
	s.alpha = alpha
}

type child struct {
	surface  *Surface
	behavior Behavior
}

// Group is an ordered container of surfaces. Index 0 is drawn first (bottom).
type Group struct {
	surface  *Surface
	children []child

	// OnAttach and OnDetach, when set, are called after a surface is added or removed.
	OnAttach func(s *Surface, index int, b Behavior)
	OnDetach func(s *Surface)
}

// NewGroup creates an empty group with its own surface.
func NewGroup(id string) *Group {
	return &Group{surface: NewSurface(id)}
}

// Surface returns the group's own surface, used to attach the group to a parent.
func (g *Group) Surface() *Surface {
	return g.surface
}

// AddView attaches s at index. A surface already in the group is moved.
// The index is clamped to the valid range.
func (g *Group) AddView(s *Surface, index int, b Behavior) {
	if i := g.IndexOf(s); i >= 0 {
		g.children = slices.Delete(g.children, i, i+1)
	}
	index = max(0, min(index, len(g.children)))
	g.children = slices.Insert(g.children, index, child{surface: s, behavior: b})
	if g.OnAttach != nil {
		g.OnAttach(s, index, b)
	}
}

// RemoveView detaches s. Removing a surface that is not attached is a no-op.
func (g *Group) RemoveView(s *Surface) {
	i := g.IndexOf(s)
	if i < 0 {
		return
	}
	g.children = slices.Delete(g.children, i, i+1)
	if g.OnDetach != nil {
		g.OnDetach(s)
	}
}

// IndexOf returns the position of s or -1 if it is not attached.
func (g *Group) IndexOf(s *Surface) int {
	return slices.IndexFunc(g.children, func(c child) bool { return c.surface == s })
}

// Contains reports whether s is attached.
func (g *Group) Contains(s *Surface) bool {
	return g.IndexOf(s) >= 0
}

func (g *Group) ChildCount() int {
	return len(g.children)
}

// ChildAt returns the surface at index, or nil if out of range.
func (g *Group) ChildAt(index int) *Surface {
	if index < 0 || index >= len(g.children) {
		return nil
	}
	return g.children[index].surface
}

// BehaviorOf returns the behavior s was attached with.
func (g *Group) BehaviorOf(s *Surface) (Behavior, bool) {
	i := g.IndexOf(s)
	if i < 0 {
		return BehaviorNone, false
	}
	return g.children[i].behavior, true
}

// IDs returns the ids of the attached surfaces, bottom first.
func (g *Group) IDs() []string {
	ids := make([]string, len(g.children))
	for i, c := range g.children {
		ids[i] = c.surface.id
	}
	return ids
}
