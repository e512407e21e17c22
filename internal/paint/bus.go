// Package paint carries LED color changes from whoever paints to every
// view of the cube and to the frame being edited.
package paint

import (
	"sync"

	"cubanimate/internal/cube"
)

// Listener receives paint events.
type Listener interface {
	NewColor(x, y, z int, c cube.Color)
	EraseColor(x, y, z int)
}

// Handle identifies one subscription.
type Handle uint64

type subscription struct {
	handle   Handle
	listener Listener
}

// Bus fans paint events out to its subscribers in subscription order.
// Publishing is synchronous: every listener has run when Publish returns.
type Bus struct {
	mu   sync.Mutex
	next Handle
	subs []subscription
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(l Listener) Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	b.subs = append(b.subs, subscription{handle: b.next, listener: l})
	return b.next
}

// Unsubscribe reports whether h was subscribed.
func (b *Bus) Unsubscribe(h Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.handle == h {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// snapshot lets listeners subscribe or unsubscribe while an event is
// being delivered.
func (b *Bus) snapshot() []subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]subscription, len(b.subs))
	copy(out, b.subs)
	return out
}

func (b *Bus) PublishNewColor(x, y, z int, c cube.Color) {
	for _, s := range b.snapshot() {
		s.listener.NewColor(x, y, z, c)
	}
}

func (b *Bus) PublishErase(x, y, z int) {
	for _, s := range b.snapshot() {
		s.listener.EraseColor(x, y, z)
	}
}

// Funcs adapts plain functions to a Listener. Nil fields are skipped.
type Funcs struct {
	OnNewColor   func(x, y, z int, c cube.Color)
	OnEraseColor func(x, y, z int)
}

func (f Funcs) NewColor(x, y, z int, c cube.Color) {
	if f.OnNewColor != nil {
		f.OnNewColor(x, y, z, c)
	}
}

func (f Funcs) EraseColor(x, y, z int) {
	if f.OnEraseColor != nil {
		f.OnEraseColor(x, y, z)
	}
}
