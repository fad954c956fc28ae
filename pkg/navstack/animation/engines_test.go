package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
)

func TestImmediate(t *testing.T) {
	a := NewImmediate()
	in, out := screen.NewComponent("in"), screen.NewComponent("out")
	done := 0

	a.Push(in, out, options.Empty, nil, func() { done++ })
	a.Pop(out, in, options.Empty, nil, func() { done++ })

	assert.Equal(t, 2, done)
	require.Len(t, a.History, 2)
	assert.Equal(t, KindPush, a.History[0].Kind)
	assert.Equal(t, KindPop, a.History[1].Kind)
	assert.False(t, a.IsChildInTransition(in))
}

func TestManual_CompletesInOrder(t *testing.T) {
	a := NewManual()
	x, y, z := screen.NewComponent("x"), screen.NewComponent("y"), screen.NewComponent("z")
	var order []string

	a.Push(y, x, options.Empty, nil, func() { order = append(order, "push") })
	a.SetRoot(z, y, options.Empty, nil, func() { order = append(order, "setRoot") })

	assert.True(t, a.IsChildInTransition(x))
	assert.True(t, a.IsChildInTransition(z))
	assert.Len(t, a.Pending(), 2)

	assert.Equal(t, 2, a.CompleteAll())
	assert.Equal(t, []string{"push", "setRoot"}, order)
	assert.False(t, a.IsChildInTransition(x))
	assert.False(t, a.CompleteNext())
}

func TestManual_CompleteSpecific(t *testing.T) {
	a := NewManual()
	s := screen.NewComponent("s")
	var order []string
	a.Push(s, nil, options.Empty, nil, func() { order = append(order, "first") })
	a.Pop(s, nil, options.Empty, nil, func() { order = append(order, "second") })

	second := a.Pending()[1]
	assert.True(t, a.Complete(second))
	assert.False(t, a.Complete(second))
	assert.Equal(t, []string{"second"}, order)
}

func TestManual_Cancel(t *testing.T) {
	a := NewManual()
	s := screen.NewComponent("s")
	called := 0
	a.Push(s, nil, options.Empty, nil, func() { called++ })
	a.Pop(s, nil, options.Empty, nil, func() { called++ })

	a.CancelPushAnimations()
	require.Len(t, a.Pending(), 1)
	assert.Equal(t, KindPop, a.Pending()[0].Kind)

	a.CancelAllAnimations()
	assert.Empty(t, a.Pending())
	assert.Len(t, a.Cancelled, 2)

	for _, tr := range a.Cancelled {
		tr.Complete()
	}
	assert.Zero(t, called, "cancelled transitions never call back")
}

func TestTransition(t *testing.T) {
	in, out := screen.NewComponent("in"), screen.NewComponent("out")
	var o options.Options
	o.Animations.Push.Duration = options.NewParam(250)
	tr := &Transition{Kind: KindPush, Appearing: in, Disappearing: out, Options: o}

	assert.True(t, tr.Involves(in))
	assert.True(t, tr.Involves(out))
	assert.False(t, tr.Involves(screen.NewComponent("other")))
	assert.Equal(t, 250, tr.Duration(300))
	assert.Equal(t, 300, (&Transition{Kind: KindPop}).Duration(300))
	assert.Equal(t, "setRoot", KindSetRoot.String())
}
