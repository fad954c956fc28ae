package stack

import (
	"slices"

	"github.com/BrandonKowalski/navstack/pkg/navstack/idstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
	"github.com/BrandonKowalski/navstack/pkg/navstack/screen"
	"github.com/BrandonKowalski/navstack/pkg/navstack/view"
)

// Push places child on top of the stack. The previous top is detached once the
// transition completes, and only if child is still on top at that point.
// Pushing an id that is already on the stack fails with ErrDuplicateID and
// leaves the stack untouched.
func (c *Controller) Push(child screen.Screen, listener CommandListener) {
	l := guard(c.log, "push", listener)
	if c.stack.Contains(child.ID()) {
		l.OnError(duplicateError("push", child.ID()))
		return
	}

	toRemove, hadTop := c.stack.Peek()
	if hadTop {
		c.backButton.AddToPushedChild(child)
	}
	child.SetParent(c)
	must(c.stack.Push(child.ID(), child))
	c.log.Debug("Pushed screen", "child", child.ID(), "size", c.stack.Len())

	if !c.IsViewCreated() {
		c.deferUntilCreated(child.ID(), l)
		return
	}

	resolved := c.resolveWithDefaults()
	extras := c.presenter.AdditionalPushAnimations(child, resolved)
	c.attachTop(child, resolved, resolved.Animations.Push.WaitForRender)

	if !hadTop {
		child.OnViewDidAppear()
		l.OnSuccess(child.ID())
		return
	}

	disappearing := toRemove.Value
	done := func() { c.onPushComplete(child, disappearing, l) }
	if resolved.Animations.Push.Enabled.IsTrueOrUndefined() {
		c.animator.Push(child, disappearing, resolved, extras, completion(c.log, "push", done))
		return
	}
	done()
}

func (c *Controller) onPushComplete(child, disappearing screen.Screen, l CommandListener) {
	child.OnViewDidAppear()
	if c.isTop(child) {
		c.layout.RemoveView(disappearing.View())
		disappearing.OnViewDidDisappear()
	} else {
		c.log.Debug("Push superseded before completion, keeping previous top attached",
			"child", child.ID(), "previous", disappearing.ID())
	}
	l.OnSuccess(child.ID())
}

// attachTop attaches the new top below the top bar and lets it announce its options.
func (c *Controller) attachTop(child screen.Screen, resolved options.Options, waitForRender options.Bool) {
	child.SetWaitForRender(waitForRender)
	if c.stack.Len() == 1 {
		c.presenter.ApplyInitialChildLayoutOptions(resolved)
	}
	v := child.View()
	c.layout.RemoveView(v)
	c.layout.AddView(v, c.layout.IndexOf(c.topBar), view.BehaviorStack)
	child.OnViewWillAppear()
}

// Pop removes the top screen. mergeOptions are merged into the top screen first
// so they can shape the pop transition. The popped screen is destroyed after the
// transition completes, and the listener receives its id.
func (c *Controller) Pop(mergeOptions options.Options, listener CommandListener) {
	c.pop("pop", mergeOptions, guard(c.log, "pop", listener))
}

func (c *Controller) pop(op string, mergeOptions options.Options, l CommandListener) {
	if !c.canPop() {
		l.OnError(nothingToPopError(op))
		return
	}

	if mergeOptions.HasValue() {
		c.Peek().MergeOptions(mergeOptions)
	}
	disappearingOptions := c.resolveWithDefaults()

	popped, err := c.stack.Pop()
	must(err)
	disappearing := popped.Value
	c.log.Debug("Popped screen", "child", disappearing.ID(), "size", c.stack.Len())

	if !c.IsViewCreated() {
		c.onPopComplete(nil, disappearing, l)
		return
	}

	appearing := c.Peek()
	appearingOptions := c.resolveChild(appearing)
	extras := c.presenter.AdditionalPopAnimations(appearingOptions, disappearingOptions, appearing)

	disappearing.OnViewWillDisappear()
	if av := appearing.View(); c.layout.IndexOf(av) < 0 {
		c.layout.AddView(av, 0, view.BehaviorStack)
	}
	appearing.OnViewWillAppear()

	done := func() { c.onPopComplete(appearing, disappearing, l) }
	if disappearingOptions.Animations.Pop.Enabled.IsTrueOrUndefined() {
		c.animator.Pop(appearing, disappearing, disappearingOptions, extras, completion(c.log, op, done))
		return
	}
	done()
}

func (c *Controller) onPopComplete(appearing, disappearing screen.Screen, l CommandListener) {
	if appearing != nil {
		appearing.OnViewDidAppear()
	}
	c.destroyChild(disappearing)
	l.OnSuccess(disappearing.ID())
	c.events.EmitScreenPopped(disappearing.ID())
}

// PopTo pops every screen above target. Screens strictly between target and the
// top are destroyed immediately without a transition, then the top is popped
// normally. Fails with ErrNothingToPop if target is not on the stack or is
// already the top.
func (c *Controller) PopTo(target screen.Screen, mergeOptions options.Options, listener CommandListener) {
	l := guard(c.log, "popTo", listener)
	if !c.stack.Contains(target.ID()) || c.stack.IsTop(target.ID()) {
		l.OnError(nothingToPopError("popTo"))
		return
	}

	c.animator.CancelPushAnimations()
	for i := c.stack.Len() - 2; i >= 0; i-- {
		e, err := c.stack.At(i)
		must(err)
		if e.ID == target.ID() {
			break
		}
		must(c.stack.Remove(e.ID))
		c.destroyChild(e.Value)
	}
	c.pop("popTo", mergeOptions, l)
}

// PopToRoot pops every screen above the root. On a stack of one screen or none
// it succeeds immediately with an empty id.
func (c *Controller) PopToRoot(mergeOptions options.Options, listener CommandListener) {
	l := guard(c.log, "popToRoot", listener)
	if !c.canPop() {
		l.OnSuccess("")
		return
	}

	c.animator.CancelPushAnimations()
	cur := c.stack.Cursor()
	cur.Next()
	for c.stack.Len() > 2 && cur.Next() {
		if c.stack.IsTop(cur.ID()) {
			break
		}
		s := cur.Value()
		must(c.stack.RemoveCursor(cur))
		c.destroyChild(s)
	}
	c.pop("popToRoot", mergeOptions, l)
}

// SetRoot replaces the whole stack with children, the last one becoming the new
// top. The new top transitions in over the old one. Once that completes the old
// screens are destroyed, except those that reappear in children, and the rest
// of children are seeded below the top and started.
func (c *Controller) SetRoot(children []screen.Screen, listener CommandListener) {
	l := guard(c.log, "setRoot", listener)
	if len(children) == 0 {
		l.OnError(emptySetRootError())
		return
	}
	if id, dup := duplicateID(children); dup {
		l.OnError(duplicateError("setRoot", id))
		return
	}

	top := children[len(children)-1]
	if !c.IsViewCreated() {
		c.setChildren(children)
		c.deferUntilCreated(top.ID(), l)
		return
	}

	c.animator.CancelPushAnimations()
	toRemove, hadTop := c.stack.Peek()
	stackToDestroy := c.stack
	c.stack = idstack.New[screen.Screen]()

	if len(children) == 1 {
		c.backButton.Clear(top)
	} else {
		c.backButton.AddToPushedChild(top)
	}
	top.SetParent(c)
	must(c.stack.Push(top.ID(), top))

	resolved := c.resolveWithDefaults()
	extras := c.presenter.AdditionalSetRootAnimations(top, resolved)
	anim := resolved.Animations.SetStackRoot
	c.attachTop(top, resolved, anim.WaitForRender)

	done := func() { c.onSetRootComplete(top, children, stackToDestroy, l) }
	if !hadTop || toRemove.Value == top || anim.Enabled.IsFalse() {
		done()
		return
	}

	disappearing := toRemove.Value
	onComplete := completion(c.log, "setRoot", done)
	animate := func() {
		top.View().SetAlpha(1)
		c.animator.SetRoot(top, disappearing, resolved, extras, onComplete)
	}
	if anim.WaitForRender.IsTrue() {
		top.View().SetAlpha(0)
		top.AddOnAppearedListener(animate)
		return
	}
	animate()
}

func (c *Controller) onSetRootComplete(top screen.Screen, children []screen.Screen, old *idstack.IDStack[screen.Screen], l CommandListener) {
	top.OnViewDidAppear()

	c.animator.CancelAllAnimations()
	for _, s := range old.Values() {
		switch {
		case s == top:
		case slices.Contains(children, s):
			c.detachChild(s)
		default:
			c.destroyChild(s)
		}
	}

	below := children[:len(children)-1]
	for i, s := range below {
		if i == 0 {
			c.backButton.Clear(s)
		} else {
			c.backButton.AddToPushedChild(s)
		}
		s.SetParent(c)
		if err := c.stack.Insert(i, s.ID(), s); err != nil {
			c.log.Error("Could not seed screen below new root", "child", s.ID(), "error", err)
		}
	}
	if len(below) > 0 {
		c.startChildrenBelowTop()
	}

	c.log.Debug("Stack root set", "children", c.stack.IDs())
	l.OnSuccess(top.ID())
}
