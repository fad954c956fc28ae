package stack

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack/animation"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
	"github.com/BrandonKowalski/navstack/pkg/navstack/view"
)

// Animator performs visual transitions between two screens. Each transition
// must call onComplete exactly once when it finishes, unless it is cancelled
// first, in which case onComplete is never called.
type Animator interface {
	Push(appearing, disappearing screen.Screen, resolved options.Options, extras []animation.Extra, onComplete func())
	Pop(appearing, disappearing screen.Screen, resolved options.Options, extras []animation.Extra, onComplete func())
	SetRoot(appearing, disappearing screen.Screen, resolved options.Options, extras []animation.Extra, onComplete func())

	// CancelPushAnimations and CancelAllAnimations stop transitions synchronously.
	// Both are safe to call when nothing is running.
	CancelPushAnimations()
	CancelAllAnimations()

	IsChildInTransition(child screen.Screen) bool
}

// Layout is the visual container screens are attached into.
// Attaching an attached surface and detaching a detached one are both safe.
type Layout interface {
	Surface() *view.Surface
	AddView(s *view.Surface, index int, b view.Behavior)
	RemoveView(s *view.Surface)
	IndexOf(s *view.Surface) int
	ChildCount() int
}

// Presenter applies stack-level presentation concerns from resolved options.
type Presenter interface {
	SetDefaultOptions(o options.Options)
	DefaultOptions() options.Options
	BindView(topBar *view.Surface)
	SetButtonOnClickListener(fn func(buttonID string))

	ApplyInitialChildLayoutOptions(resolved options.Options)
	ApplyChildOptions(resolved options.Options, child screen.Screen)
	MergeChildOptions(toMerge, resolved options.Options, child screen.Screen)
	MergeOptions(toMerge options.Options, current screen.Screen)
	ApplyFab(fab options.FabOptions, child screen.Screen)
	MergeFab(fab options.FabOptions, child screen.Screen)
	OnChildDestroyed(child screen.Screen)

	AdditionalPushAnimations(child screen.Screen, resolved options.Options) []animation.Extra
	AdditionalPopAnimations(appearing, disappearing options.Options, appearingChild screen.Screen) []animation.Extra
	AdditionalSetRootAnimations(child screen.Screen, resolved options.Options) []animation.Extra
}

// EventEmitter notifies outside observers. Calls are fire-and-forget.
type EventEmitter interface {
	EmitScreenPopped(componentID string)
}

// CommandListener receives the outcome of a stack command.
// Exactly one of its methods is called, once, per command.
type CommandListener interface {
	OnSuccess(childID string)
	OnError(err error)
}

// ListenerFuncs adapts plain functions to a CommandListener. Nil funcs are skipped.
type ListenerFuncs struct {
	Success func(childID string)
	Error   func(err error)
}

func (l ListenerFuncs) OnSuccess(childID string) {
	if l.Success != nil {
		l.Success(childID)
	}
}

func (l ListenerFuncs) OnError(err error) {
	if l.Error != nil {
		l.Error(err)
	}
}

// NoopListener ignores the outcome.
var NoopListener CommandListener = ListenerFuncs{}
