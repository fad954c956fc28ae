// Package screen defines the capability set every navigable unit exposes to a
// stack, and a Base that implements the shared lifecycle.
//
// A stack never inspects concrete screen types. Components, nested stacks and
// application-defined screens are all driven through the Screen interface.
package screen

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/view"
)

// Screen is a navigable unit with identity, lifecycle and an owned surface.
type Screen interface {
	ID() string

	// View returns the screen's surface, creating it on first use.
	View() *view.Surface
	IsViewCreated() bool
	IsViewShown() bool
	IsDestroyed() bool
	IsStarted() bool

	// Options returns the screen's own accumulated options.
	Options() options.Options
	// ResolveCurrentOptions returns the options the screen currently presents with,
	// including anything contributed by its own children.
	ResolveCurrentOptions() options.Options
	MergeOptions(o options.Options)

	Parent() Parent
	SetParent(p Parent)

	// Start primes the screen (creates its surface) without showing it.
	Start()
	OnViewWillAppear()
	OnViewDidAppear()
	OnViewWillDisappear()
	OnViewDidDisappear()

	// AddOnAppearedListener runs fn once the screen has rendered, immediately if it already has.
	AddOnAppearedListener(fn func())
	SetWaitForRender(wait options.Bool)

	SendOnNavigationButtonPressed(buttonID string)

	// Destroy irreversibly releases the surface and resources. Calling it twice is a no-op.
	Destroy()
}

// Parent is a container that owns child screens and receives their option changes.
type Parent interface {
	MergeChildOptions(o options.Options, child Screen)
	ApplyChildOptions(o options.Options, child Screen)
	OnChildDestroyed(child Screen)
}
