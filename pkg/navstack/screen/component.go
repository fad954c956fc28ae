package screen

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/view"
)

// Hooks are optional callbacks a Component runs at each lifecycle step.
type Hooks struct {
	OnStart         func()
	OnAppear        func()
	OnDisappear     func()
	OnDestroy       func()
	OnButtonPressed func(buttonID string)
}

// Component is a leaf screen: application content with no children of its own.
type Component struct {
	Base
	name        string
	hooks       Hooks
	deferRender bool
}

// ComponentOption configures a Component.
type ComponentOption func(*Component)

// WithName sets the registered component name the screen was created from.
func WithName(name string) ComponentOption {
	return func(c *Component) { c.name = name }
}

// WithOptions sets the component's initial options.
func WithOptions(o options.Options) ComponentOption {
	return func(c *Component) { c.SetOptions(o) }
}

// WithHooks installs lifecycle callbacks.
func WithHooks(h Hooks) ComponentOption {
	return func(c *Component) { c.hooks = h }
}

// WithDeferredRender keeps the component unrendered after its surface is
// created, until MarkRendered is called. Use it when content draws asynchronously.
func WithDeferredRender() ComponentOption {
	return func(c *Component) { c.deferRender = true }
}

// NewComponent creates a component screen.
func NewComponent(id string, opts ...ComponentOption) *Component {
	c := &Component{}
	c.Init(c, id, options.Empty, c.newSurface)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Component) newSurface() *view.Surface {
	return view.NewSurface(c.ID())
}

// Name returns the registered component name, if any.
func (c *Component) Name() string {
	return c.name
}

func (c *Component) View() *view.Surface {
	created := c.IsViewCreated()
	v := c.Base.View()
	if !created && !c.deferRender {
		c.MarkRendered()
	}
	return v
}

func (c *Component) Start() {
	c.View()
	c.Base.Start()
	if c.hooks.OnStart != nil {
		c.hooks.OnStart()
	}
}

func (c *Component) OnViewDidAppear() {
	c.Base.OnViewDidAppear()
	if !c.IsDestroyed() && c.hooks.OnAppear != nil {
		c.hooks.OnAppear()
	}
}

func (c *Component) OnViewDidDisappear() {
	wasShown := c.IsViewShown()
	c.Base.OnViewDidDisappear()
	if wasShown && c.hooks.OnDisappear != nil {
		c.hooks.OnDisappear()
	}
}

func (c *Component) SendOnNavigationButtonPressed(buttonID string) {
	if c.hooks.OnButtonPressed != nil {
		c.hooks.OnButtonPressed(buttonID)
		return
	}
	c.Base.SendOnNavigationButtonPressed(buttonID)
}

func (c *Component) Destroy() {
	if c.IsDestroyed() {
		return
	}
	c.Base.Destroy()
	if c.hooks.OnDestroy != nil {
		c.hooks.OnDestroy()
	}
}
