package navigator

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/animation"
	"github.com/BrandonKowalski/navstack/pkg/navstack/events"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
	"github.com/BrandonKowalski/navstack/pkg/navstack/stack"
)

// Factory creates the screen for a component node.
type Factory func(id string, o options.Options) (screen.Screen, error)

// Navigator owns the root of the screen tree and routes commands to the
// stack that holds the addressed screen.
type Navigator struct {
	factories   map[string]Factory
	defaults    options.Options
	newAnimator func() stack.Animator
	events      *events.Bus

	root        screen.Screen
	rootOptions options.Options

	log *slog.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithDefaultOptions sets the options every stack resolves against.
// Without it the navigator uses navstack.DefaultOptions.
func WithDefaultOptions(o options.Options) Option {
	return func(n *Navigator) { n.defaults = o }
}

// WithAnimator sets the animator factory; each stack gets its own animator.
func WithAnimator(fn func() stack.Animator) Option {
	return func(n *Navigator) { n.newAnimator = fn }
}

// WithEvents publishes navigation events on bus instead of a private one.
func WithEvents(bus *events.Bus) Option {
	return func(n *Navigator) { n.events = bus }
}

// New creates a Navigator with no registered components.
func New(opts ...Option) *Navigator {
	n := &Navigator{
		factories:   make(map[string]Factory),
		defaults:    navstack.DefaultOptions(),
		newAnimator: func() stack.Animator { return animation.NewImmediate() },
		events:      events.NewBus(),
		log:         internal.GetInternalLogger().With("component", "navigator"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Register adds a factory for the given component name.
func (n *Navigator) Register(name string, fn Factory) *Navigator {
	n.factories[name] = fn
	return n
}

// RegisterComponent registers a plain screen.Component under name. Navigation
// button presses on it are published as events.
func (n *Navigator) RegisterComponent(name string) *Navigator {
	return n.Register(name, func(id string, o options.Options) (screen.Screen, error) {
		return screen.NewComponent(id,
			screen.WithName(name),
			screen.WithOptions(o),
			screen.WithHooks(screen.Hooks{
				OnButtonPressed: func(buttonID string) {
					n.events.EmitNavigationButtonPressed(id, buttonID)
				},
			}),
		), nil
	})
}

// Events returns the bus navigation events are published on.
func (n *Navigator) Events() *events.Bus {
	return n.events
}

// SetDefaultOptions replaces the defaults for the whole tree.
func (n *Navigator) SetDefaultOptions(o options.Options) {
	n.defaults = o
	n.walk(n.root, func(s screen.Screen) {
		if c, ok := s.(*stack.Controller); ok {
			c.SetDefaultOptions(o)
		}
	})
}

// Root returns the current root screen, or nil.
func (n *Navigator) Root() screen.Screen {
	return n.root
}

// RootOptions returns the options the root has announced upward, with
// everything the stacks consume stripped.
func (n *Navigator) RootOptions() options.Options {
	return n.rootOptions
}

// Build creates the screen tree for l without attaching it anywhere.
func (n *Navigator) Build(l Layout) (screen.Screen, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return n.build(l.withIDs())
}

func (n *Navigator) build(l Layout) (screen.Screen, error) {
	if l.Type == KindComponent {
		fn, ok := n.factories[l.Name]
		if !ok {
			return nil, navstack.NewCommandError("build", navstack.ErrNotFound,
				internal.Localize(internal.MsgUnknownComponent, map[string]any{"Name": l.Name}))
		}
		s, err := fn(l.ID, l.Options)
		if err != nil {
			return nil, fmt.Errorf("navigator: create %s: %w", l.Name, err)
		}
		return s, nil
	}

	children := make([]screen.Screen, 0, len(l.Children))
	for _, child := range l.Children {
		s, err := n.build(child)
		if err != nil {
			return nil, err
		}
		children = append(children, s)
	}
	c, err := stack.New(stack.Config{
		ID:             l.ID,
		Children:       children,
		Options:        l.Options,
		DefaultOptions: n.defaults,
		Animator:       n.newAnimator(),
		Events:         n.events,
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (n *Navigator) buildAll(layouts []Layout) ([]screen.Screen, error) {
	out := make([]screen.Screen, 0, len(layouts))
	for _, l := range layouts {
		s, err := n.Build(l)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// completed reports success to l and publishes a command completed event.
func (n *Navigator) completed(command string, l stack.CommandListener) stack.CommandListener {
	if l == nil {
		l = stack.NoopListener
	}
	return stack.ListenerFuncs{
		Success: func(id string) {
			l.OnSuccess(id)
			n.events.EmitCommandCompleted(command, id)
		},
		Error: l.OnError,
	}
}

// SetRoot builds l, shows it as the new root and destroys the previous root.
func (n *Navigator) SetRoot(l Layout, listener stack.CommandListener) {
	done := n.completed("setRoot", listener)
	root, err := n.Build(l)
	if err != nil {
		done.OnError(err)
		return
	}

	previous := n.root
	n.root = root
	root.SetParent(n)
	root.View()
	root.OnViewWillAppear()
	root.OnViewDidAppear()
	if previous != nil {
		previous.OnViewDidDisappear()
		previous.Destroy()
	}
	n.log.Debug("Root set", "root", root.ID())
	done.OnSuccess(root.ID())
}

// Push builds l and pushes it onto the stack holding onComponentID. The id may
// also name the stack itself.
func (n *Navigator) Push(onComponentID string, l Layout, listener stack.CommandListener) {
	done := n.completed("push", listener)
	c, err := n.stackFor("push", onComponentID, true)
	if err != nil {
		done.OnError(err)
		return
	}
	s, err := n.Build(l)
	if err != nil {
		done.OnError(err)
		return
	}
	c.Push(s, done)
}

// Pop pops the top of the stack holding componentID.
func (n *Navigator) Pop(componentID string, mergeOptions options.Options, listener stack.CommandListener) {
	done := n.completed("pop", listener)
	c, err := n.stackFor("pop", componentID, true)
	if err != nil {
		done.OnError(err)
		return
	}
	c.Pop(mergeOptions, done)
}

// PopTo pops the stack holding componentID until that screen is on top.
func (n *Navigator) PopTo(componentID string, mergeOptions options.Options, listener stack.CommandListener) {
	done := n.completed("popTo", listener)
	c, err := n.stackFor("popTo", componentID, false)
	if err != nil {
		done.OnError(err)
		return
	}
	target, err := c.Get(componentID)
	if err != nil {
		done.OnError(err)
		return
	}
	c.PopTo(target, mergeOptions, done)
}

// PopToRoot pops the stack holding componentID down to its root.
func (n *Navigator) PopToRoot(componentID string, mergeOptions options.Options, listener stack.CommandListener) {
	done := n.completed("popToRoot", listener)
	c, err := n.stackFor("popToRoot", componentID, true)
	if err != nil {
		done.OnError(err)
		return
	}
	c.PopToRoot(mergeOptions, done)
}

// SetStackRoot replaces the content of the stack holding onComponentID.
func (n *Navigator) SetStackRoot(onComponentID string, layouts []Layout, listener stack.CommandListener) {
	done := n.completed("setStackRoot", listener)
	c, err := n.stackFor("setStackRoot", onComponentID, true)
	if err != nil {
		done.OnError(err)
		return
	}
	children, err := n.buildAll(layouts)
	if err != nil {
		done.OnError(err)
		return
	}
	c.SetRoot(children, done)
}

// MergeOptions merges o into the screen with componentID.
func (n *Navigator) MergeOptions(componentID string, o options.Options) error {
	s := n.find(componentID)
	if s == nil {
		return notFoundError("mergeOptions", componentID)
	}
	s.MergeOptions(o)
	return nil
}

// HandleBack offers the hardware back action to the innermost stack first.
// It returns false when no stack could pop.
func (n *Navigator) HandleBack(listener stack.CommandListener) bool {
	return handleBack(n.root, n.completed("handleBack", listener))
}

func handleBack(s screen.Screen, l stack.CommandListener) bool {
	c, ok := s.(*stack.Controller)
	if !ok {
		return false
	}
	if top := c.Peek(); top != nil && handleBack(top, l) {
		return true
	}
	return c.HandleBack(l)
}

// Destroy tears down the whole tree.
func (n *Navigator) Destroy() {
	if n.root != nil {
		n.root.Destroy()
		n.root = nil
	}
}

// MergeChildOptions receives runtime option changes that bubbled up to the root.
func (n *Navigator) MergeChildOptions(o options.Options, child screen.Screen) {
	n.rootOptions = n.rootOptions.MergeWith(o)
	n.log.Debug("Root received merged options", "child", child.ID())
}

// ApplyChildOptions receives the options of the screen that just appeared.
func (n *Navigator) ApplyChildOptions(o options.Options, child screen.Screen) {
	n.rootOptions = o
	n.log.Debug("Root received applied options", "child", child.ID())
}

func (n *Navigator) OnChildDestroyed(child screen.Screen) {
	if n.root == child {
		n.root = nil
	}
}

func (n *Navigator) walk(s screen.Screen, fn func(screen.Screen)) {
	if s == nil {
		return
	}
	fn(s)
	if c, ok := s.(*stack.Controller); ok {
		for _, child := range c.Children() {
			n.walk(child, fn)
		}
	}
}

func (n *Navigator) find(id string) screen.Screen {
	var found screen.Screen
	n.walk(n.root, func(s screen.Screen) {
		if found == nil && s.ID() == id {
			found = s
		}
	})
	return found
}

func (n *Navigator) stackFor(op, id string, allowSelf bool) (*stack.Controller, error) {
	if c := findStack(n.root, id, allowSelf); c != nil {
		return c, nil
	}
	return nil, notFoundError(op, id)
}

// findStack returns the innermost stack holding id as a direct child, or the
// stack named id when allowSelf is set.
func findStack(s screen.Screen, id string, allowSelf bool) *stack.Controller {
	c, ok := s.(*stack.Controller)
	if !ok {
		return nil
	}
	if allowSelf && c.ID() == id {
		return c
	}
	for _, child := range c.Children() {
		if inner := findStack(child, id, allowSelf); inner != nil {
			return inner
		}
		if child.ID() == id {
			return c
		}
	}
	return nil
}

func notFoundError(op, id string) error {
	return navstack.NewCommandError(op, navstack.ErrNotFound,
		internal.Localize(internal.MsgStackNotFound, map[string]any{"ID": id}))
}
