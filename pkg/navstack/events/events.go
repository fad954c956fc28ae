// Package events delivers navigation notifications to outside observers.
// Delivery is fire-and-forget: publishers never wait on or hear back from subscribers.
package events

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// Type identifies an event.
type Type string

const (
	TypeScreenPopped            Type = "screenPopped"
	TypeNavigationButtonPressed Type = "navigationButtonPressed"
	TypeCommandCompleted        Type = "commandCompleted"
)

// Event is a single notification.
type Event struct {
	Type        Type
	ComponentID string
	ButtonID    string // TypeNavigationButtonPressed only
	Command     string // TypeCommandCompleted only
}

// Bus fans events out to every subscriber, in subscription order.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID atomic.Uint64
}

type subscription struct {
	id uint64
	fn func(Event)
}

// NewBus creates a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a function that removes it.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := b.nextID.Inc()

	b.mu.Lock()
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to all current subscribers.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	internal.GetInternalLogger().Debug("Publishing navigation event", "type", e.Type, "component", e.ComponentID)
	for _, s := range subs {
		s.fn(e)
	}
}

func (b *Bus) EmitScreenPopped(componentID string) {
	b.Publish(Event{Type: TypeScreenPopped, ComponentID: componentID})
}

func (b *Bus) EmitNavigationButtonPressed(componentID, buttonID string) {
	b.Publish(Event{Type: TypeNavigationButtonPressed, ComponentID: componentID, ButtonID: buttonID})
}

func (b *Bus) EmitCommandCompleted(command, componentID string) {
	b.Publish(Event{Type: TypeCommandCompleted, Command: command, ComponentID: componentID})
}
