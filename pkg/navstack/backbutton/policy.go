// Package backbutton tracks, per pushed screen, whether the hardware back action
// should pop the stack or be forwarded to the screen as a button press.
package backbutton

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
)

// Policy is the interception table, keyed by screen id.
// It is mutated only while a stack pushes, re-roots or pops.
type Policy struct {
	interceptable map[string]bool
}

// New creates an empty policy.
func New() *Policy {
	return &Policy{interceptable: make(map[string]bool)}
}

// AddToPushedChild marks a screen pushed above another one as interceptable,
// and shows its back button unless the screen configured it explicitly.
func (p *Policy) AddToPushedChild(child screen.Screen) {
	p.interceptable[child.ID()] = true
	if !child.Options().TopBar.BackButton.Visible.HasValue() {
		var o options.Options
		o.TopBar.BackButton.Visible = options.True()
		child.MergeOptions(o)
	}
}

// Clear marks a screen as a stack root: back is never intercepted for it and
// its back button is hidden unless configured explicitly.
func (p *Policy) Clear(child screen.Screen) {
	p.interceptable[child.ID()] = false
	if !child.Options().TopBar.BackButton.Visible.HasValue() {
		var o options.Options
		o.TopBar.BackButton.Visible = options.False()
		child.MergeOptions(o)
	}
}

// IsInterceptable reports the table entry for id.
func (p *Policy) IsInterceptable(id string) bool {
	return p.interceptable[id]
}

// ShouldPopOnHardwareButtonPress decides what hardware back does for the
// current top: pop when the screen is interceptable and its resolved options
// do not disable popStackOnPress, otherwise forward a button press.
func (p *Policy) ShouldPopOnHardwareButtonPress(top screen.Screen, resolved options.Options) bool {
	if !p.interceptable[top.ID()] {
		return false
	}
	return resolved.HardwareBackButton.PopStackOnPress.IsTrueOrUndefined()
}

// Forget drops the entry for a destroyed screen.
func (p *Policy) Forget(id string) {
	delete(p.interceptable, id)
}

// Len returns the number of tracked screens.
func (p *Policy) Len() int {
	return len(p.interceptable)
}
