// Package presenter applies a stack's presentation concerns, meaning the top
// bar, the floating action button and the bar animations that accompany a
// transition, from resolved options.
package presenter

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack/animation"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
	"github.com/BrandonKowalski/navstack/pkg/navstack/view"
)

// TopBar is the presented state of the navigation bar.
type TopBar struct {
	Title             string
	Subtitle          string
	Visible           bool
	BackButtonVisible bool
	Height            int
}

// Fab is the presented state of the floating action button.
type Fab struct {
	ID      string
	OwnerID string // Screen the button belongs to
	Icon    string
	Color   string
	Visible bool
}

// DefaultTopBarHeight is used when no height is configured.
const DefaultTopBarHeight = 56

// Stack presents a single stack's chrome.
type Stack struct {
	defaults      options.Options
	topBar        TopBar
	topBarSurface *view.Surface
	fab           Fab
	onButtonClick func(buttonID string)
}

// New creates a presenter with the given default options.
func New(defaults options.Options) *Stack {
	return &Stack{defaults: defaults}
}

func (p *Stack) SetDefaultOptions(o options.Options) {
	p.defaults = o
}

func (p *Stack) DefaultOptions() options.Options {
	return p.defaults
}

// BindView attaches the presenter to the top bar surface it drives.
func (p *Stack) BindView(topBar *view.Surface) {
	p.topBarSurface = topBar
	p.syncTopBarSurface()
}

// SetButtonOnClickListener installs the handler for bar button presses.
func (p *Stack) SetButtonOnClickListener(fn func(buttonID string)) {
	p.onButtonClick = fn
}

// PressButton simulates a press on a bar button.
func (p *Stack) PressButton(buttonID string) {
	if p.onButtonClick != nil {
		p.onButtonClick(buttonID)
	}
}

// TopBar returns the presented bar state.
func (p *Stack) TopBar() TopBar {
	return p.topBar
}

// Fab returns the presented fab state.
func (p *Stack) Fab() Fab {
	return p.fab
}

func (p *Stack) ApplyInitialChildLayoutOptions(resolved options.Options) {
	p.topBar.Visible = resolved.TopBar.Visible.IsTrueOrUndefined()
	p.topBar.Height = resolved.TopBar.Height.GetOr(DefaultTopBarHeight)
	p.syncTopBarSurface()
}

// ApplyChildOptions replaces the bar state with what child resolves to.
func (p *Stack) ApplyChildOptions(resolved options.Options, child screen.Screen) {
	bar := resolved.TopBar
	p.topBar = TopBar{
		Title:             bar.Title.Get(),
		Subtitle:          bar.Subtitle.Get(),
		Visible:           bar.Visible.IsTrueOrUndefined(),
		BackButtonVisible: bar.BackButton.Visible.IsTrue(),
		Height:            bar.Height.GetOr(DefaultTopBarHeight),
	}
	p.syncTopBarSurface()
	internal.GetInternalLogger().Debug("Applied top bar options", "child", child.ID(), "title", p.topBar.Title)
}

// MergeChildOptions updates only the bar fields set in toMerge.
func (p *Stack) MergeChildOptions(toMerge, _ options.Options, child screen.Screen) {
	p.mergeTopBar(toMerge.TopBar)
	internal.GetInternalLogger().Debug("Merged top bar options", "child", child.ID())
}

// MergeOptions applies options merged onto the stack itself while it is shown.
func (p *Stack) MergeOptions(toMerge options.Options, _ screen.Screen) {
	p.mergeTopBar(toMerge.TopBar)
}

func (p *Stack) mergeTopBar(bar options.TopBarOptions) {
	if bar.Title.HasValue() {
		p.topBar.Title = bar.Title.Get()
	}
	if bar.Subtitle.HasValue() {
		p.topBar.Subtitle = bar.Subtitle.Get()
	}
	if bar.Visible.HasValue() {
		p.topBar.Visible = bar.Visible.IsTrue()
	}
	if bar.BackButton.Visible.HasValue() {
		p.topBar.BackButtonVisible = bar.BackButton.Visible.IsTrue()
	}
	if bar.Height.HasValue() {
		p.topBar.Height = bar.Height.Get()
	}
	p.syncTopBarSurface()
}

func (p *Stack) syncTopBarSurface() {
	if p.topBarSurface == nil {
		return
	}
	if p.topBar.Visible {
		p.topBarSurface.SetAlpha(1)
	} else {
		p.topBarSurface.SetAlpha(0)
	}
}

// ApplyFab shows the fab configured by child, or hides it if child has none.
func (p *Stack) ApplyFab(fab options.FabOptions, child screen.Screen) {
	if !fab.ID.HasValue() {
		p.fab = Fab{}
		return
	}
	p.fab = Fab{
		ID:      fab.ID.Get(),
		OwnerID: child.ID(),
		Icon:    fab.Icon.Get(),
		Color:   fab.Color.Get(),
		Visible: fab.Visible.IsTrueOrUndefined(),
	}
}

// MergeFab updates the set fab fields. A fab id change replaces the button.
func (p *Stack) MergeFab(fab options.FabOptions, child screen.Screen) {
	if fab.ID.HasValue() && (fab.ID.Get() != p.fab.ID || p.fab.OwnerID != child.ID()) {
		p.ApplyFab(fab, child)
		return
	}
	if p.fab.OwnerID != child.ID() {
		return
	}
	if fab.Visible.HasValue() {
		p.fab.Visible = fab.Visible.IsTrue()
	}
	if fab.Icon.HasValue() {
		p.fab.Icon = fab.Icon.Get()
	}
	if fab.Color.HasValue() {
		p.fab.Color = fab.Color.Get()
	}
}

// OnChildDestroyed drops state owned by a destroyed child.
func (p *Stack) OnChildDestroyed(child screen.Screen) {
	if p.fab.OwnerID == child.ID() {
		p.fab = Fab{}
	}
}

func (p *Stack) barExtras(resolved options.Options) []animation.Extra {
	if resolved.TopBar.Animate.IsFalse() || p.topBarSurface == nil {
		return nil
	}
	from := p.topBarSurface.Alpha()
	to := 0.0
	if resolved.TopBar.Visible.IsTrueOrUndefined() {
		to = 1
	}
	if from == to {
		return nil
	}
	return []animation.Extra{{Target: p.topBarSurface.ID(), Property: "alpha", From: from, To: to}}
}

func (p *Stack) AdditionalPushAnimations(_ screen.Screen, resolved options.Options) []animation.Extra {
	return p.barExtras(resolved)
}

// AdditionalPopAnimations animates the bar towards what the appearing screen wants.
func (p *Stack) AdditionalPopAnimations(appearing, _ options.Options, _ screen.Screen) []animation.Extra {
	return p.barExtras(appearing)
}

func (p *Stack) AdditionalSetRootAnimations(_ screen.Screen, resolved options.Options) []animation.Extra {
	return p.barExtras(resolved)
}
