package animation

import (
	"slices"

	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
)

// Immediate completes every transition synchronously and keeps a log of them.
type Immediate struct {
	History []*Transition
}

// NewImmediate creates an engine that never defers completion.
func NewImmediate() *Immediate {
	return &Immediate{}
}

func (a *Immediate) run(kind Kind, appearing, disappearing screen.Screen, resolved options.Options, extras []Extra, onComplete func()) {
	t := &Transition{
		Kind:         kind,
		Appearing:    appearing,
		Disappearing: disappearing,
		Options:      resolved,
		Extras:       extras,
		onComplete:   onComplete,
	}
	a.History = append(a.History, t)
	t.Complete()
}

func (a *Immediate) Push(appearing, disappearing screen.Screen, resolved options.Options, extras []Extra, onComplete func()) {
	a.run(KindPush, appearing, disappearing, resolved, extras, onComplete)
}

func (a *Immediate) Pop(appearing, disappearing screen.Screen, resolved options.Options, extras []Extra, onComplete func()) {
	a.run(KindPop, appearing, disappearing, resolved, extras, onComplete)
}

func (a *Immediate) SetRoot(appearing, disappearing screen.Screen, resolved options.Options, extras []Extra, onComplete func()) {
	a.run(KindSetRoot, appearing, disappearing, resolved, extras, onComplete)
}

func (a *Immediate) CancelPushAnimations() {}

func (a *Immediate) CancelAllAnimations() {}

func (a *Immediate) IsChildInTransition(screen.Screen) bool {
	return false
}

// Manual queues transitions until Complete, CompleteNext or CompleteAll is called.
// Cancelled transitions are dropped without calling back.
type Manual struct {
	pending   []*Transition
	Cancelled []*Transition
}

// NewManual creates an engine driven by the caller.
func NewManual() *Manual {
	return &Manual{}
}

func (a *Manual) enqueue(kind Kind, appearing, disappearing screen.Screen, resolved options.Options, extras []Extra, onComplete func()) {
	a.pending = append(a.pending, &Transition{
		Kind:         kind,
		Appearing:    appearing,
		Disappearing: disappearing,
		Options:      resolved,
		Extras:       extras,
		onComplete:   onComplete,
	})
}

func (a *Manual) Push(appearing, disappearing screen.Screen, resolved options.Options, extras []Extra, onComplete func()) {
	a.enqueue(KindPush, appearing, disappearing, resolved, extras, onComplete)
}

func (a *Manual) Pop(appearing, disappearing screen.Screen, resolved options.Options, extras []Extra, onComplete func()) {
	a.enqueue(KindPop, appearing, disappearing, resolved, extras, onComplete)
}

func (a *Manual) SetRoot(appearing, disappearing screen.Screen, resolved options.Options, extras []Extra, onComplete func()) {
	a.enqueue(KindSetRoot, appearing, disappearing, resolved, extras, onComplete)
}

// Pending returns the queued transitions, oldest first.
func (a *Manual) Pending() []*Transition {
	return slices.Clone(a.pending)
}

// Complete finishes a specific pending transition. It reports false if t is not pending.
func (a *Manual) Complete(t *Transition) bool {
	i := slices.Index(a.pending, t)
	if i < 0 {
		return false
	}
	a.pending = slices.Delete(a.pending, i, i+1)
	t.Complete()
	return true
}

// CompleteNext finishes the oldest pending transition.
func (a *Manual) CompleteNext() bool {
	if len(a.pending) == 0 {
		return false
	}
	return a.Complete(a.pending[0])
}

// CompleteAll finishes pending transitions in order, including any queued
// by completion callbacks along the way.
func (a *Manual) CompleteAll() int {
	n := 0
	for a.CompleteNext() {
		n++
	}
	return n
}

func (a *Manual) cancel(match func(*Transition) bool) {
	kept := a.pending[:0]
	for _, t := range a.pending {
		if match(t) {
			t.onComplete = nil
			a.Cancelled = append(a.Cancelled, t)
			continue
		}
		kept = append(kept, t)
	}
	clear(a.pending[len(kept):])
	a.pending = kept
}

func (a *Manual) CancelPushAnimations() {
	a.cancel(func(t *Transition) bool { return t.Kind == KindPush })
}

func (a *Manual) CancelAllAnimations() {
	a.cancel(func(*Transition) bool { return true })
}

func (a *Manual) IsChildInTransition(child screen.Screen) bool {
	return slices.ContainsFunc(a.pending, func(t *Transition) bool { return t.Involves(child) })
}
