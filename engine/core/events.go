package core

import (
	"sync"

	"github.com/spaghettifunk/nova/engine/containers"
)

// System internal event codes. Applications should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Resized/resolution changed from the OS.
	EVENT_CODE_RESIZED EventCode = 0x08

	MAX_EVENT_CODE EventCode = 0xFF
)

// EventContext carries the payload of a fired event.
type EventContext struct {
	Type EventCode
	Data interface{}
}

// KeyEvent is the payload for key pressed/released events.
type KeyEvent struct {
	KeyCode   uint16
	Modifiers uint32
}

// SystemEvent is the payload for window-level events such as resizes.
type SystemEvent struct {
	WindowWidth  int
	WindowHeight int
}

// FnOnEvent is invoked for every listener registered for a fired code.
// Returning true marks the event handled and stops further delivery.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

const maxDeferredEvents = 512

// EventBus routes engine events to registered listeners. Fire delivers
// synchronously on the calling goroutine; Defer parks the event on a bounded
// queue that the game loop drains once per tick, which is how asynchronous
// sources publish without touching loop-owned state.
type EventBus struct {
	mu         sync.Mutex
	registered map[EventCode][]*registeredEvent
	deferred   *containers.RingQueue[EventContext]
}

func NewEventBus() *EventBus {
	return &EventBus{
		registered: make(map[EventCode][]*registeredEvent),
		deferred:   containers.NewRingQueue[EventContext](maxDeferredEvents),
	}
}

// Register subscribes the listener for events fired with the given code.
// Duplicate listener registrations for the same code are rejected.
func (eb *EventBus) Register(code EventCode, listener interface{}, onEvent FnOnEvent) bool {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for _, e := range eb.registered[code] {
		if e.listener == listener {
			LogWarn("event listener already registered for code %#x", code)
			return false
		}
	}
	eb.registered[code] = append(eb.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

// Unregister removes the listener for the given code. Returns false when no
// matching registration exists.
func (eb *EventBus) Unregister(code EventCode, listener interface{}) bool {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	events := eb.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eb.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// Fire delivers an event to listeners of its code, in registration order.
// Delivery stops at the first handler that returns true.
func (eb *EventBus) Fire(context EventContext) bool {
	eb.mu.Lock()
	events := make([]*registeredEvent, len(eb.registered[context.Type]))
	copy(events, eb.registered[context.Type])
	eb.mu.Unlock()

	for _, e := range events {
		if e.callback(context) {
			return true
		}
	}
	return false
}

// Defer queues an event for delivery on the next DrainDeferred call. When
// the queue is full the event is dropped and logged.
func (eb *EventBus) Defer(context EventContext) {
	eb.mu.Lock()
	err := eb.deferred.Enqueue(context)
	eb.mu.Unlock()
	if err != nil {
		LogWarn("deferred event queue full, dropping event %#x", context.Type)
	}
}

// DrainDeferred fires every queued event. The game loop calls this once per
// tick so deferred events land at a tick boundary.
func (eb *EventBus) DrainDeferred() {
	for {
		eb.mu.Lock()
		context, err := eb.deferred.Dequeue()
		eb.mu.Unlock()
		if err != nil {
			return
		}
		eb.Fire(context)
	}
}
