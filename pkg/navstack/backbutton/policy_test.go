package backbutton

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
)

func TestAddToPushedChild(t *testing.T) {
	p := New()
	child := screen.NewComponent("detail")

	p.AddToPushedChild(child)

	assert.True(t, p.IsInterceptable("detail"))
	assert.True(t, child.Options().TopBar.BackButton.Visible.IsTrue())
}

func TestAddToPushedChild_KeepsExplicitVisibility(t *testing.T) {
	p := New()
	var o options.Options
	o.TopBar.BackButton.Visible = options.False()
	child := screen.NewComponent("detail", screen.WithOptions(o))

	p.AddToPushedChild(child)

	assert.True(t, p.IsInterceptable("detail"))
	assert.True(t, child.Options().TopBar.BackButton.Visible.IsFalse())
}

func TestClear(t *testing.T) {
	p := New()
	root := screen.NewComponent("root")
	p.AddToPushedChild(root)

	p.Clear(root)

	assert.False(t, p.IsInterceptable("root"))
	assert.True(t, root.Options().TopBar.BackButton.Visible.IsTrue(), "explicit value from the push is kept")

	fresh := screen.NewComponent("fresh")
	p.Clear(fresh)
	assert.True(t, fresh.Options().TopBar.BackButton.Visible.IsFalse())
}

func TestShouldPopOnHardwareButtonPress(t *testing.T) {
	disabled := options.Options{}
	disabled.HardwareBackButton.PopStackOnPress = options.False()
	enabled := options.Options{}
	enabled.HardwareBackButton.PopStackOnPress = options.True()

	tests := []struct {
		name          string
		interceptable bool
		resolved      options.Options
		want          bool
	}{
		{"interceptable and unset", true, options.Empty, true},
		{"interceptable and enabled", true, enabled, true},
		{"interceptable but disabled", true, disabled, false},
		{"root", false, enabled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			s := screen.NewComponent("s")
			if tt.interceptable {
				p.AddToPushedChild(s)
			} else {
				p.Clear(s)
			}
			assert.Equal(t, tt.want, p.ShouldPopOnHardwareButtonPress(s, tt.resolved))
		})
	}
}

func TestForget(t *testing.T) {
	p := New()
	p.AddToPushedChild(screen.NewComponent("a"))
	p.AddToPushedChild(screen.NewComponent("b"))
	assert.Equal(t, 2, p.Len())

	p.Forget("a")
	assert.Equal(t, 1, p.Len())
	assert.False(t, p.IsInterceptable("a"))
}
