// Package stack implements the stack controller: an ordered set of screens of
// which only the top is visible, with push, pop, popTo, popToRoot and setRoot
// commands, hardware back handling and option forwarding to the parent.
//
// All methods must be called from the single UI goroutine. Commands report
// their outcome asynchronously through a CommandListener, which fires exactly
// once per command, after the transition completes.
package stack

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/animation"
	"github.com/BrandonKowalski/navstack/pkg/navstack/backbutton"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/events"
	"github.com/BrandonKowalski/navstack/pkg/navstack/idstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/presenter"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
	"github.com/BrandonKowalski/navstack/pkg/navstack/view"
)

// Config holds the collaborators and initial state of a Controller.
// Zero-valued collaborators are replaced with the package defaults.
type Config struct {
	ID       string          // Generated when empty
	Children []screen.Screen // Bottom to top
	Options  options.Options // The stack's own options

	// DefaultOptions seed the presenter. Ignored when Presenter is set.
	DefaultOptions options.Options

	Animator   Animator           // Defaults to animation.NewImmediate()
	Presenter  Presenter          // Defaults to presenter.New(DefaultOptions)
	Events     EventEmitter       // Defaults to events.NewBus()
	BackButton *backbutton.Policy // Defaults to backbutton.New()

	// NewLayout builds the container the stack attaches screens into.
	// Defaults to a view.Group.
	NewLayout func(id string) Layout
}

// Controller manages a stack of screens. It is itself a Screen, so stacks nest.
type Controller struct {
	screen.Base

	stack          *idstack.IDStack[screen.Screen]
	initialOptions options.Options

	animator   Animator
	presenter  Presenter
	events     EventEmitter
	backButton *backbutton.Policy

	newLayout func(id string) Layout
	layout    Layout
	topBar    *view.Surface

	deferred []deferredSuccess

	log *slog.Logger
}

// deferredSuccess is a command accepted before the stack had a surface.
// It succeeds once the surface is created.
type deferredSuccess struct {
	childID  string
	listener CommandListener
}

var (
	_ screen.Screen = (*Controller)(nil)
	_ screen.Parent = (*Controller)(nil)
)

// New creates a stack holding cfg.Children. It fails if two children share an id.
func New(cfg Config) (*Controller, error) {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.Animator == nil {
		cfg.Animator = animation.NewImmediate()
	}
	if cfg.Presenter == nil {
		cfg.Presenter = presenter.New(cfg.DefaultOptions)
	}
	if cfg.Events == nil {
		cfg.Events = events.NewBus()
	}
	if cfg.BackButton == nil {
		cfg.BackButton = backbutton.New()
	}
	if cfg.NewLayout == nil {
		cfg.NewLayout = func(id string) Layout { return view.NewGroup(id) }
	}

	if id, dup := duplicateID(cfg.Children); dup {
		return nil, duplicateError("new", id)
	}

	c := &Controller{
		stack:          idstack.New[screen.Screen](),
		initialOptions: cfg.Options,
		animator:       cfg.Animator,
		presenter:      cfg.Presenter,
		events:         cfg.Events,
		backButton:     cfg.BackButton,
		newLayout:      cfg.NewLayout,
	}
	c.Init(c, cfg.ID, cfg.Options, c.createView)
	c.log = c.Logger()
	c.presenter.SetButtonOnClickListener(c.OnNavigationButtonPressed)
	c.setChildren(cfg.Children)

	c.log.Debug("Stack created", "children", c.stack.IDs())
	return c, nil
}

// View returns the stack's surface. The first call builds the layout, attaches
// the top child and completes commands that were accepted before it existed.
func (c *Controller) View() *view.Surface {
	created := c.IsViewCreated()
	v := c.Base.View()
	if !created {
		c.flushDeferred()
	}
	return v
}

// CreateView is View under the name hosts usually look for.
func (c *Controller) CreateView() *view.Surface {
	return c.View()
}

func (c *Controller) createView() *view.Surface {
	c.layout = c.newLayout(c.ID())
	c.topBar = view.NewSurface(c.ID() + constants.TopBarSuffix)
	c.layout.AddView(c.topBar, 0, view.BehaviorNone)
	c.presenter.BindView(c.topBar)
	c.addInitialChild()
	return c.layout.Surface()
}

func (c *Controller) addInitialChild() {
	top, ok := c.stack.Peek()
	if !ok {
		c.MarkRendered()
		return
	}
	child := top.Value
	child.AddOnAppearedListener(func() {
		c.startChildrenBelowTop()
		c.MarkRendered()
	})
	c.layout.AddView(child.View(), 0, view.BehaviorStack)
	c.presenter.ApplyInitialChildLayoutOptions(c.resolveWithDefaults())
}

// startChildrenBelowTop primes every screen under the top so popping to them is instant.
func (c *Controller) startChildrenBelowTop() {
	if c.stack.Len() < 2 {
		return
	}
	cur := c.stack.Cursor()
	for cur.Next() {
		if c.stack.IsTop(cur.ID()) {
			break
		}
		if s := cur.Value(); !s.IsStarted() && !s.IsDestroyed() {
			s.Start()
		}
	}
}

func (c *Controller) flushDeferred() {
	pending := c.deferred
	c.deferred = nil
	for _, d := range pending {
		d.listener.OnSuccess(d.childID)
	}
}

func (c *Controller) deferUntilCreated(childID string, l CommandListener) {
	c.log.Debug("Stack has no surface yet, completing on creation", "child", childID)
	c.deferred = append(c.deferred, deferredSuccess{childID: childID, listener: l})
}

// setChildren replaces the stack content without transitions. Used before the
// surface exists.
func (c *Controller) setChildren(children []screen.Screen) {
	old := c.stack.Values()
	c.stack.Clear()
	for i, child := range children {
		if i == 0 {
			c.backButton.Clear(child)
		} else {
			c.backButton.AddToPushedChild(child)
		}
		child.SetParent(c)
		must(c.stack.Push(child.ID(), child))
	}
	for _, s := range old {
		if !slices.Contains(children, s) {
			c.destroyChild(s)
		}
	}
	c.dropRemovedDeferred()
}

// dropRemovedDeferred forgets pending successes for screens that setChildren
// removed. Their listeners are not called, as with a cancelled push transition.
func (c *Controller) dropRemovedDeferred() {
	kept := c.deferred[:0]
	for _, d := range c.deferred {
		if c.stack.Contains(d.childID) {
			kept = append(kept, d)
			continue
		}
		c.log.Debug("Dropping pending success for removed screen", "child", d.childID)
	}
	c.deferred = kept
}

// Size returns the number of screens on the stack.
func (c *Controller) Size() int {
	return c.stack.Len()
}

func (c *Controller) IsEmpty() bool {
	return c.stack.IsEmpty()
}

// Peek returns the top screen, or nil when the stack is empty.
func (c *Controller) Peek() screen.Screen {
	top, ok := c.stack.Peek()
	if !ok {
		return nil
	}
	return top.Value
}

// Children returns the screens bottom to top.
func (c *Controller) Children() []screen.Screen {
	return c.stack.Values()
}

// ChildIDs returns the screen ids bottom to top.
func (c *Controller) ChildIDs() []string {
	return c.stack.IDs()
}

// Contains reports whether a screen with id is on the stack.
func (c *Controller) Contains(id string) bool {
	return c.stack.Contains(id)
}

// Get returns the screen with id.
func (c *Controller) Get(id string) (screen.Screen, error) {
	return c.stack.Get(id)
}

func (c *Controller) IsChildInTransition(child screen.Screen) bool {
	return c.animator.IsChildInTransition(child)
}

// Layout returns the container built by the first View call, or nil before that.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Presenter returns the presenter driving the stack's chrome.
func (c *Controller) Presenter() Presenter {
	return c.presenter
}

func (c *Controller) SetDefaultOptions(o options.Options) {
	c.presenter.SetDefaultOptions(o)
}

func (c *Controller) isTop(s screen.Screen) bool {
	top, ok := c.stack.Peek()
	return ok && top.Value == s
}

func (c *Controller) canPop() bool {
	return c.stack.Len() > 1
}

// destroyChild detaches a screen's surface, if it was ever created, and destroys it.
// detachChild takes a screen that stays on the stack off screen.
func (c *Controller) detachChild(s screen.Screen) {
	if c.layout == nil || !s.IsViewCreated() {
		return
	}
	c.layout.RemoveView(s.View())
	if s.IsViewShown() {
		s.OnViewDidDisappear()
	}
}

func (c *Controller) destroyChild(s screen.Screen) {
	if c.layout != nil && s.IsViewCreated() {
		c.layout.RemoveView(s.View())
		s.OnViewDidDisappear()
	}
	s.Destroy()
}

// ResolveCurrentOptions layers the top child's options over the stack's own.
func (c *Controller) ResolveCurrentOptions() options.Options {
	top, ok := c.stack.Peek()
	if !ok || top.Value.IsDestroyed() {
		return c.initialOptions
	}
	return c.initialOptions.MergeWith(top.Value.ResolveCurrentOptions())
}

func (c *Controller) resolveWithDefaults() options.Options {
	return options.Resolve(c.presenter.DefaultOptions(), c.ResolveCurrentOptions(), options.Empty)
}

func (c *Controller) resolveChild(s screen.Screen) options.Options {
	return options.Resolve(c.presenter.DefaultOptions(), c.initialOptions.MergeWith(s.ResolveCurrentOptions()), options.Empty)
}

// MergeOptions merges o into the stack's own options and lets the parent know.
func (c *Controller) MergeOptions(o options.Options) {
	if c.IsViewShown() {
		if top := c.Peek(); top != nil {
			c.presenter.MergeOptions(o, top)
		}
	}
	c.initialOptions = c.initialOptions.MergeWith(o)
	c.Base.MergeOptions(o)
}

// MergeChildOptions handles an option change made by a child at runtime.
// Stack-level concerns update only when child is the visible top. The parent
// always hears about it, minus the options the stack consumes.
func (c *Controller) MergeChildOptions(o options.Options, child screen.Screen) {
	if child.IsViewShown() && c.isTop(child) {
		c.presenter.MergeChildOptions(o, c.resolveWithDefaults(), child)
		if o.Fab.HasValue() {
			c.presenter.MergeFab(o.Fab, child)
		}
	}
	if p := c.Parent(); p != nil {
		p.MergeChildOptions(o.StackSanitized(), child)
	}
}

// ApplyChildOptions handles a child announcing its full options as it appears.
func (c *Controller) ApplyChildOptions(o options.Options, child screen.Screen) {
	c.SetOptions(c.initialOptions.MergeWith(o))
	if c.isTop(child) {
		c.presenter.ApplyChildOptions(c.resolveWithDefaults(), child)
		c.presenter.ApplyFab(c.Options().Fab, child)
	}
	if p := c.Parent(); p != nil {
		p.ApplyChildOptions(c.Options().StackSanitized(), child)
	}
}

func (c *Controller) OnChildDestroyed(child screen.Screen) {
	c.presenter.OnChildDestroyed(child)
	c.backButton.Forget(child.ID())
}

func (c *Controller) OnViewWillAppear() {
	c.Base.OnViewWillAppear()
	if top := c.Peek(); top != nil {
		top.OnViewWillAppear()
	}
}

func (c *Controller) OnViewDidAppear() {
	c.Base.OnViewDidAppear()
	if top := c.Peek(); top != nil {
		top.OnViewDidAppear()
	}
}

func (c *Controller) OnViewDidDisappear() {
	c.Base.OnViewDidDisappear()
	if top := c.Peek(); top != nil {
		top.OnViewDidDisappear()
	}
}

// SendOnNavigationButtonPressed forwards a press to the top screen.
func (c *Controller) SendOnNavigationButtonPressed(buttonID string) {
	if top := c.Peek(); top != nil {
		top.SendOnNavigationButtonPressed(buttonID)
	}
}

// OnNavigationButtonPressed handles a press on one of the stack's bar buttons.
// The back button pops unless the top screen disabled it.
func (c *Controller) OnNavigationButtonPressed(buttonID string) {
	if buttonID == constants.BackButtonID {
		if c.resolveWithDefaults().TopBar.BackButton.PopOnPress.IsTrueOrUndefined() {
			c.Pop(options.Empty, NoopListener)
			return
		}
	}
	c.SendOnNavigationButtonPressed(buttonID)
}

// HandleBack reacts to the hardware back action. It returns false when the
// stack cannot pop, leaving the action to the parent. Otherwise it either pops
// or forwards the press to the top screen; a forwarded press succeeds
// immediately with the top screen's id.
func (c *Controller) HandleBack(listener CommandListener) bool {
	if !c.canPop() {
		return false
	}
	top := c.Peek()
	if c.backButton.ShouldPopOnHardwareButtonPress(top, c.resolveWithDefaults()) {
		c.Pop(options.Empty, listener)
		return true
	}
	c.log.Debug("Forwarding hardware back to screen", "child", top.ID())
	top.SendOnNavigationButtonPressed(constants.HardwareBackButtonID)
	guard(c.log, "handleBack", listener).OnSuccess(top.ID())
	return true
}

// Destroy cancels running transitions and destroys every child, then the stack.
func (c *Controller) Destroy() {
	if c.IsDestroyed() {
		return
	}
	c.animator.CancelAllAnimations()
	children := c.stack.Values()
	for i := len(children) - 1; i >= 0; i-- {
		c.destroyChild(children[i])
	}
	c.stack.Clear()
	c.deferred = nil
	c.Base.Destroy()
}

func (c *Controller) String() string {
	return fmt.Sprintf("stack(%s)%s", c.ID(), c.stack)
}

func duplicateID(children []screen.Screen) (string, bool) {
	seen := make(map[string]struct{}, len(children))
	for _, s := range children {
		if _, ok := seen[s.ID()]; ok {
			return s.ID(), true
		}
		seen[s.ID()] = struct{}{}
	}
	return "", false
}

func duplicateError(op, id string) error {
	return navstack.NewCommandError(op, navstack.ErrDuplicateID,
		internal.Localize(internal.MsgDuplicateID, map[string]any{"ID": id}))
}

func nothingToPopError(op string) error {
	return navstack.NewCommandError(op, navstack.ErrNothingToPop,
		internal.Localize(internal.MsgNothingToPop, nil))
}

func emptySetRootError() error {
	return navstack.NewCommandError("setRoot", navstack.ErrInvalidArgument,
		internal.Localize(internal.MsgEmptySetRoot, nil))
}

// must panics on IdStack misuse. Every call site has already checked the
// condition that would make it fail.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("stack: %v", err))
	}
}
