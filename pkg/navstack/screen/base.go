package screen

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/view"
)

// Base implements the lifecycle shared by all screens. Embed it and call Init
// from the constructor:
//
//	type Detail struct {
//	    screen.Base
//	}
//
//	func NewDetail(id string) *Detail {
//	    d := &Detail{}
//	    d.Init(d, id, options.Empty, nil)
//	    return d
//	}
//
// Methods that notify the parent pass the embedding screen, not the Base.
type Base struct {
	self       Screen
	id         string
	options    options.Options
	parent     Parent
	view       *view.Surface
	createView func() *view.Surface

	viewCreated atomic.Bool
	shown       atomic.Bool
	destroyed   atomic.Bool
	started     atomic.Bool
	rendered    atomic.Bool

	waitForRender     options.Bool
	appearedListeners []func()

	log *slog.Logger
}

// Init wires the Base to the screen embedding it. createView may be nil, in
// which case a plain surface named after the id is created.
func (b *Base) Init(self Screen, id string, initial options.Options, createView func() *view.Surface) {
	b.self = self
	b.id = id
	b.options = initial
	b.createView = createView
	b.log = internal.GetInternalLogger().With("screen", id)
}

func (b *Base) ID() string {
	return b.id
}

// Logger returns the internal logger scoped to this screen.
func (b *Base) Logger() *slog.Logger {
	return b.log
}

func (b *Base) View() *view.Surface {
	if b.view == nil {
		if b.createView != nil {
			b.view = b.createView()
		} else {
			b.view = view.NewSurface(b.id)
		}
		b.viewCreated.Store(true)
	}
	return b.view
}

func (b *Base) IsViewCreated() bool {
	return b.viewCreated.Load()
}

func (b *Base) IsViewShown() bool {
	return !b.destroyed.Load() && b.viewCreated.Load() && b.shown.Load()
}

func (b *Base) IsDestroyed() bool {
	return b.destroyed.Load()
}

func (b *Base) IsStarted() bool {
	return b.started.Load()
}

func (b *Base) IsRendered() bool {
	return b.rendered.Load()
}

func (b *Base) Options() options.Options {
	return b.options
}

func (b *Base) ResolveCurrentOptions() options.Options {
	return b.options
}

// MergeOptions layers o over the screen's own options and forwards it to the parent.
func (b *Base) MergeOptions(o options.Options) {
	b.options = b.options.MergeWith(o)
	if b.parent != nil {
		b.parent.MergeChildOptions(o, b.self)
	}
}

// SetOptions replaces the screen's own options without notifying the parent.
func (b *Base) SetOptions(o options.Options) {
	b.options = o
}

func (b *Base) Parent() Parent {
	return b.parent
}

func (b *Base) SetParent(p Parent) {
	b.parent = p
}

func (b *Base) Start() {
	b.View()
	b.started.Store(true)
}

// OnViewWillAppear marks the screen shown and lets the parent apply its options.
func (b *Base) OnViewWillAppear() {
	if b.destroyed.Load() {
		return
	}
	b.shown.Store(true)
	if b.parent != nil {
		b.parent.ApplyChildOptions(b.self.ResolveCurrentOptions(), b.self)
	}
}

func (b *Base) OnViewDidAppear() {
	if b.destroyed.Load() {
		return
	}
	b.shown.Store(true)
}

func (b *Base) OnViewWillDisappear() {}

func (b *Base) OnViewDidDisappear() {
	b.shown.Store(false)
}

// MarkRendered records that the screen's content has drawn and runs the
// pending appeared listeners.
func (b *Base) MarkRendered() {
	if !b.rendered.CompareAndSwap(false, true) {
		return
	}
	listeners := b.appearedListeners
	b.appearedListeners = nil
	for _, fn := range listeners {
		fn()
	}
}

func (b *Base) AddOnAppearedListener(fn func()) {
	if b.rendered.Load() {
		fn()
		return
	}
	b.appearedListeners = append(b.appearedListeners, fn)
}

func (b *Base) SetWaitForRender(wait options.Bool) {
	b.waitForRender = wait
}

// WaitForRender reports what the last transition asked for.
func (b *Base) WaitForRender() options.Bool {
	return b.waitForRender
}

func (b *Base) SendOnNavigationButtonPressed(buttonID string) {
	b.log.Debug("Navigation button pressed with no handler", "button", buttonID)
}

// Destroy marks the screen destroyed and notifies the parent once.
// Detaching the surface is the owning container's job.
func (b *Base) Destroy() {
	if !b.destroyed.CompareAndSwap(false, true) {
		return
	}
	b.shown.Store(false)
	b.appearedListeners = nil
	if b.parent != nil {
		b.parent.OnChildDestroyed(b.self)
	}
}
