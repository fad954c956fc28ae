package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstack/pkg/navstack/animation"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
	"github.com/BrandonKowalski/navstack/pkg/navstack/view"
)

func titled(title string) options.Options {
	var o options.Options
	o.TopBar.Title = options.NewParam(title)
	return o
}

func hiddenBar() options.Options {
	var o options.Options
	o.TopBar.Visible = options.False()
	return o
}

func TestApplyChildOptions(t *testing.T) {
	p := New(options.Empty)
	bar := view.NewSurface("stack/topBar")
	p.BindView(bar)
	child := screen.NewComponent("inbox")

	o := titled("Inbox")
	o.TopBar.BackButton.Visible = options.True()
	p.ApplyChildOptions(o, child)

	assert.Equal(t, TopBar{Title: "Inbox", Visible: true, BackButtonVisible: true, Height: DefaultTopBarHeight}, p.TopBar())
	assert.Equal(t, 1.0, bar.Alpha())

	p.ApplyChildOptions(hiddenBar(), child)
	assert.Equal(t, "", p.TopBar().Title, "apply replaces the whole bar state")
	assert.Zero(t, bar.Alpha())
}

func TestMergeChildOptions(t *testing.T) {
	p := New(options.Empty)
	child := screen.NewComponent("inbox")
	p.ApplyChildOptions(titled("Inbox"), child)

	var o options.Options
	o.TopBar.Subtitle = options.NewParam("3 unread")
	p.MergeChildOptions(o, options.Empty, child)

	assert.Equal(t, "Inbox", p.TopBar().Title)
	assert.Equal(t, "3 unread", p.TopBar().Subtitle)

	p.MergeOptions(hiddenBar(), child)
	assert.False(t, p.TopBar().Visible)
}

func TestFab(t *testing.T) {
	p := New(options.Empty)
	owner := screen.NewComponent("inbox")
	other := screen.NewComponent("detail")

	var fab options.FabOptions
	fab.ID = options.NewParam("compose")
	fab.Icon = options.NewParam("pencil")
	p.ApplyFab(fab, owner)
	assert.Equal(t, Fab{ID: "compose", OwnerID: "inbox", Icon: "pencil", Visible: true}, p.Fab())

	var hide options.FabOptions
	hide.Visible = options.False()
	p.MergeFab(hide, other)
	assert.True(t, p.Fab().Visible, "merges from other screens are ignored")

	p.MergeFab(hide, owner)
	assert.False(t, p.Fab().Visible)

	p.OnChildDestroyed(other)
	assert.Equal(t, "compose", p.Fab().ID)
	p.OnChildDestroyed(owner)
	assert.Equal(t, Fab{}, p.Fab())

	p.ApplyFab(fab, owner)
	p.ApplyFab(options.FabOptions{}, other)
	assert.Equal(t, Fab{}, p.Fab())
}

func TestAdditionalAnimations(t *testing.T) {
	p := New(options.Empty)
	bar := view.NewSurface("stack/topBar")
	p.BindView(bar)
	child := screen.NewComponent("a")

	assert.Empty(t, p.AdditionalPushAnimations(child, options.Empty), "bar already visible")

	extras := p.AdditionalPushAnimations(child, hiddenBar())
	require.Len(t, extras, 1)
	assert.Equal(t, animation.Extra{Target: "stack/topBar", Property: "alpha", From: 1, To: 0}, extras[0])

	noAnimate := hiddenBar()
	noAnimate.TopBar.Animate = options.False()
	assert.Empty(t, p.AdditionalSetRootAnimations(child, noAnimate))

	bar.SetAlpha(0)
	extras = p.AdditionalPopAnimations(options.Empty, hiddenBar(), child)
	require.Len(t, extras, 1)
	assert.Equal(t, 1.0, extras[0].To)
}

func TestUnboundPresenter(t *testing.T) {
	p := New(titled("default"))
	assert.Equal(t, "default", p.DefaultOptions().TopBar.Title.Get())
	assert.Empty(t, p.AdditionalPushAnimations(screen.NewComponent("a"), hiddenBar()))

	p.SetDefaultOptions(options.Empty)
	assert.False(t, p.DefaultOptions().HasValue())

	var pressed string
	p.SetButtonOnClickListener(func(id string) { pressed = id })
	p.PressButton("back")
	assert.Equal(t, "back", pressed)
}

func TestApplyInitialChildLayoutOptions(t *testing.T) {
	p := New(options.Empty)
	var o options.Options
	o.TopBar.Height = options.NewParam(72)
	p.ApplyInitialChildLayoutOptions(o)
	assert.Equal(t, 72, p.TopBar().Height)
	assert.True(t, p.TopBar().Visible)
}
