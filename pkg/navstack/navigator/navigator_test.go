package navigator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/events"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
	"github.com/BrandonKowalski/navstack/pkg/navstack/stack"
)

type recorder struct {
	successes []string
	errs      []error
}

func (r *recorder) OnSuccess(id string) { r.successes = append(r.successes, id) }
func (r *recorder) OnError(err error)   { r.errs = append(r.errs, err) }

const mailLayout = `
type: stack
id: main
options:
  layout:
    backgroundColor: "#fff"
children:
  - type: component
    id: inbox
    name: inbox
    options:
      topBar:
        title: Inbox
`

func newNavigator(t *testing.T) *Navigator {
	t.Helper()
	n := New()
	n.RegisterComponent("inbox").RegisterComponent("message").RegisterComponent("settings")

	root, err := ParseLayout([]byte(mailLayout))
	require.NoError(t, err)
	rec := &recorder{}
	n.SetRoot(root, rec)
	require.Equal(t, []string{"main"}, rec.successes)
	return n
}

func mainStack(t *testing.T, n *Navigator) *stack.Controller {
	t.Helper()
	c, ok := n.Root().(*stack.Controller)
	require.True(t, ok)
	return c
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]byte(mailLayout))
	require.NoError(t, err)

	assert.Equal(t, KindStack, l.Type)
	assert.Equal(t, "main", l.ID)
	require.Len(t, l.Children, 1)
	assert.Equal(t, "inbox", l.Children[0].Name)
	assert.Equal(t, "Inbox", l.Children[0].Options.TopBar.Title.Get())
	assert.False(t, l.Children[0].Options.TopBar.Visible.HasValue())
}

func TestParseLayout_JSON(t *testing.T) {
	l, err := ParseLayout([]byte(`{"type": "component", "name": "inbox", "options": {"fab": {"id": "compose"}}}`))
	require.NoError(t, err)
	assert.Equal(t, KindComponent, l.Type)
	assert.Equal(t, "compose", l.Options.Fab.ID.Get())
}

func TestParseLayout_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":         "",
		"unknown field": "type: stack\ncolour: red\n",
		"unknown type":  "type: tabs\n",
		"nameless":      "type: component\n",
		"nested":        "type: stack\nchildren:\n  - type: component\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLayout([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(mailLayout), 0o644))

	l, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "main", l.ID)

	_, err = LoadLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild_GeneratesMissingIDs(t *testing.T) {
	n := New().RegisterComponent("inbox")

	s, err := n.Build(Stack(Component("inbox", options.Empty)))
	require.NoError(t, err)

	c := s.(*stack.Controller)
	assert.NotEmpty(t, c.ID())
	require.Equal(t, 1, c.Size())
	assert.NotEmpty(t, c.Peek().ID())
	assert.NotEqual(t, c.ID(), c.Peek().ID())
}

func TestBuild_UnknownComponent(t *testing.T) {
	_, err := New().Build(Component("nope", options.Empty))
	require.Error(t, err)
	assert.True(t, errors.Is(err, navstack.ErrNotFound))
	assert.Contains(t, err.Error(), "nope")
}

func TestBuild_DuplicateIDsInStack(t *testing.T) {
	n := New().RegisterComponent("inbox")
	_, err := n.Build(Stack(
		Component("inbox", options.Empty).WithID("a"),
		Component("inbox", options.Empty).WithID("a"),
	))
	assert.True(t, navstack.IsDuplicateID(err))
}

func TestPushAndPop(t *testing.T) {
	n := newNavigator(t)
	c := mainStack(t, n)

	push := &recorder{}
	n.Push("inbox", Component("message", options.Empty).WithID("msg-1"), push)
	assert.Equal(t, []string{"msg-1"}, push.successes)
	assert.Equal(t, []string{"inbox", "msg-1"}, c.ChildIDs())

	pop := &recorder{}
	n.Pop("msg-1", options.Empty, pop)
	assert.Equal(t, []string{"msg-1"}, pop.successes)
	assert.Equal(t, []string{"inbox"}, c.ChildIDs())
}

func TestPush_ByStackID(t *testing.T) {
	n := newNavigator(t)

	n.Push("main", Component("message", options.Empty).WithID("m"), nil)

	assert.Equal(t, []string{"inbox", "m"}, mainStack(t, n).ChildIDs())
}

func TestCommands_UnknownTarget(t *testing.T) {
	n := newNavigator(t)

	rec := &recorder{}
	n.Push("ghost", Component("message", options.Empty), rec)
	n.Pop("ghost", options.Empty, rec)
	n.PopTo("ghost", options.Empty, rec)
	n.PopToRoot("ghost", options.Empty, rec)
	n.SetStackRoot("ghost", []Layout{Component("message", options.Empty)}, rec)

	require.Len(t, rec.errs, 5)
	for _, err := range rec.errs {
		assert.True(t, errors.Is(err, navstack.ErrNotFound))
	}
	assert.Error(t, n.MergeOptions("ghost", options.Empty))
}

func TestPopToAndPopToRoot(t *testing.T) {
	n := newNavigator(t)
	for _, id := range []string{"m1", "m2", "m3"} {
		n.Push("main", Component("message", options.Empty).WithID(id), nil)
	}
	c := mainStack(t, n)

	rec := &recorder{}
	n.PopTo("m1", options.Empty, rec)
	assert.Equal(t, []string{"m3"}, rec.successes)
	assert.Equal(t, []string{"inbox", "m1"}, c.ChildIDs())

	rec = &recorder{}
	n.PopToRoot("m1", options.Empty, rec)
	assert.Equal(t, []string{"m1"}, rec.successes)
	assert.Equal(t, []string{"inbox"}, c.ChildIDs())
}

func TestSetStackRoot(t *testing.T) {
	n := newNavigator(t)
	rec := &recorder{}

	n.SetStackRoot("main", []Layout{
		Component("settings", options.Empty).WithID("settings"),
		Component("message", options.Empty).WithID("about"),
	}, rec)

	assert.Equal(t, []string{"about"}, rec.successes)
	assert.Equal(t, []string{"settings", "about"}, mainStack(t, n).ChildIDs())
}

func TestMergeOptions_UpdatesTopBar(t *testing.T) {
	n := newNavigator(t)

	var o options.Options
	o.TopBar.Title = options.NewParam("Unread (3)")
	o.Layout.BackgroundColor = options.NewParam("#000")
	require.NoError(t, n.MergeOptions("inbox", o))

	c := mainStack(t, n)
	assert.Equal(t, "Unread (3)", c.ResolveCurrentOptions().TopBar.Title.Get())
	assert.Equal(t, "#000", n.RootOptions().Layout.BackgroundColor.Get())
	assert.False(t, n.RootOptions().TopBar.HasValue(), "stack options never reach the root")
}

func TestHandleBack_InnermostFirst(t *testing.T) {
	n := New().RegisterComponent("inbox").RegisterComponent("message")
	n.SetRoot(Stack(
		Component("inbox", options.Empty).WithID("inbox"),
		Stack(
			Component("message", options.Empty).WithID("m1"),
			Component("message", options.Empty).WithID("m2"),
		).WithID("thread"),
	).WithID("main"), nil)

	outer := mainStack(t, n)
	inner, err := outer.Get("thread")
	require.NoError(t, err)

	rec := &recorder{}
	assert.True(t, n.HandleBack(rec))
	assert.Equal(t, []string{"m2"}, rec.successes)
	assert.Equal(t, []string{"m1"}, inner.(*stack.Controller).ChildIDs())

	assert.True(t, n.HandleBack(nil))
	assert.Equal(t, []string{"inbox"}, outer.ChildIDs())
	assert.True(t, inner.IsDestroyed())

	assert.False(t, n.HandleBack(nil))
}

func TestEvents(t *testing.T) {
	bus := events.NewBus()
	var got []events.Event
	bus.Subscribe(func(e events.Event) { got = append(got, e) })

	n := New(WithEvents(bus)).RegisterComponent("inbox").RegisterComponent("message")
	n.SetRoot(Stack(Component("inbox", options.Empty).WithID("inbox")).WithID("main"), nil)
	n.Push("main", Component("message", options.Empty).WithID("m"), nil)

	var o options.Options
	o.HardwareBackButton.PopStackOnPress = options.False()
	require.NoError(t, n.MergeOptions("m", o))
	assert.True(t, n.HandleBack(nil))

	n.Pop("m", options.Empty, nil)

	assert.Equal(t, []events.Event{
		{Type: events.TypeCommandCompleted, Command: "setRoot", ComponentID: "main"},
		{Type: events.TypeCommandCompleted, Command: "push", ComponentID: "m"},
		{Type: events.TypeNavigationButtonPressed, ComponentID: "m", ButtonID: constants.HardwareBackButtonID},
		{Type: events.TypeCommandCompleted, Command: "handleBack", ComponentID: "m"},
		{Type: events.TypeCommandCompleted, Command: "pop", ComponentID: "m"},
		{Type: events.TypeScreenPopped, ComponentID: "m"},
	}, got)
}

func TestSetRoot_DestroysPreviousRoot(t *testing.T) {
	n := newNavigator(t)
	previous := n.Root()

	n.SetRoot(Stack(Component("settings", options.Empty)), nil)

	assert.True(t, previous.IsDestroyed())
	assert.NotSame(t, previous, n.Root())
	assert.True(t, n.Root().IsViewShown())
}

func TestSetDefaultOptions(t *testing.T) {
	n := newNavigator(t)

	var defaults options.Options
	defaults.TopBar.Subtitle = options.NewParam("Mail")
	n.SetDefaultOptions(defaults)

	c := mainStack(t, n)
	assert.Equal(t, "Mail", c.Presenter().DefaultOptions().TopBar.Subtitle.Get())
}

func TestDestroy(t *testing.T) {
	n := newNavigator(t)
	root := n.Root()
	children := mainStack(t, n).Children()

	n.Destroy()

	assert.Nil(t, n.Root())
	assert.True(t, root.IsDestroyed())
	for _, s := range children {
		assert.True(t, s.IsDestroyed())
	}
}

var _ screen.Parent = (*Navigator)(nil)
