// Package animation contains transition engines a stack can drive.
//
// The visual work of a transition is outside navstack; an engine only has to
// call the completion callback exactly once when the transition finishes, or
// never if it is cancelled first. Immediate completes synchronously and
// Manual queues transitions until the caller completes them, which makes
// intermediate states observable.
package animation

import (
	"fmt"

	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
)

// Kind is the stack command a transition belongs to.
type Kind int

const (
	KindPush Kind = iota
	KindPop
	KindSetRoot
)

func (k Kind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindPop:
		return "pop"
	case KindSetRoot:
		return "setRoot"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Extra is an element animation run alongside a transition, such as the top
// bar sliding out when the appearing screen hides it.
type Extra struct {
	Target   string  // Element id, e.g. the top bar surface id
	Property string  // "alpha", "translationY", ...
	From     float64 // Start value
	To       float64 // End value
}

// Transition is one requested transition.
type Transition struct {
	Kind         Kind
	Appearing    screen.Screen
	Disappearing screen.Screen
	Options      options.Options
	Extras       []Extra

	onComplete func()
}

// Complete runs the completion callback.
func (t *Transition) Complete() {
	if t.onComplete != nil {
		fn := t.onComplete
		t.onComplete = nil
		fn()
	}
}

// Involves reports whether s takes part in the transition.
func (t *Transition) Involves(s screen.Screen) bool {
	return t.Appearing == s || t.Disappearing == s
}

func (t *Transition) String() string {
	from, to := "<nil>", "<nil>"
	if t.Disappearing != nil {
		from = t.Disappearing.ID()
	}
	if t.Appearing != nil {
		to = t.Appearing.ID()
	}
	return fmt.Sprintf("%s %s -> %s", t.Kind, from, to)
}

// Duration returns the configured duration in milliseconds for the transition's kind.
func (t *Transition) Duration(def int) int {
	switch t.Kind {
	case KindPush:
		return t.Options.Animations.Push.Duration.GetOr(def)
	case KindPop:
		return t.Options.Animations.Pop.Duration.GetOr(def)
	default:
		return t.Options.Animations.SetStackRoot.Duration.GetOr(def)
	}
}
