// Package input delivers key and pointer events from a frontend to whatever
// scene currently owns the screen.
package input

import (
	"sort"
	"sync"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Pointer button ids, shared by touch pads and on-screen buttons.
const (
	PointerLeft    = "left"
	PointerRight   = "right"
	PointerJump    = "jump"
	PointerRestart = "restart"
	PointerMenu    = "menu"
)

// pointerActions maps pointer button ids to logical actions.
var pointerActions = map[string]core.Action{
	PointerLeft:    core.ActionLeft,
	PointerRight:   core.ActionRight,
	PointerJump:    core.ActionJump,
	PointerRestart: core.ActionRestart,
	PointerMenu:    core.ActionBack,
}

// PointerAction returns the action bound to a pointer id.
func PointerAction(id string) (core.Action, bool) {
	a, ok := pointerActions[id]
	return a, ok
}

// Handler receives input events.
type Handler func(ev core.InputEvent)

// Bus fans input events out to its subscribers.
// Thread-safe; handlers run on the publishing goroutine.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
}

// NewBus creates an empty input bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[int]Handler),
	}
}

// Subscribe registers h and returns a function that removes it.
// The cancel function is safe to call multiple times.
func (b *Bus) Subscribe(h Handler) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers, id)
		})
	}
}

// Count returns the number of active subscribers.
func (b *Bus) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

// KeyDown publishes a press of a.
func (b *Bus) KeyDown(a core.Action) {
	b.Publish(core.Pressed(a))
}

// KeyUp publishes a release of a.
func (b *Bus) KeyUp(a core.Action) {
	b.Publish(core.Released(a))
}

// Pointer publishes a press or release of the pointer button id.
// Unknown ids are ignored.
func (b *Bus) Pointer(id string, pressed bool) {
	a, ok := PointerAction(id)
	if !ok {
		return
	}
	if pressed {
		b.KeyDown(a)
	} else {
		b.KeyUp(a)
	}
}

// Publish delivers ev to every subscriber in subscription order.
// Events carrying ActionNone or an unknown action are dropped.
func (b *Bus) Publish(ev core.InputEvent) {
	if !ev.Action.Valid() {
		return
	}

	b.mu.RLock()
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]Handler, len(ids))
	for i, id := range ids {
		handlers[i] = b.handlers[id]
	}
	b.mu.RUnlock()

	// Handlers may subscribe or cancel, so call them without the lock.
	for _, h := range handlers {
		h(ev)
	}
}
