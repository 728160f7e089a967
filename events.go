package orbit

import (
	"github.com/akmonengine/orbit/config"
)

const (
	VIEWPORT_RESIZED EventType = iota
	PROJECTION_SWITCHED
	SETTINGS_CHANGED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// ViewportResizedEvent is sent when the framebuffer size changes
type ViewportResizedEvent struct {
	Width, Height                 int
	PreviousWidth, PreviousHeight int
}

func (e ViewportResizedEvent) Type() EventType { return VIEWPORT_RESIZED }

// ProjectionSwitchedEvent is sent when the camera toggles between perspective and orthographic
type ProjectionSwitchedEvent struct {
	Orthographic bool
}

func (e ProjectionSwitchedEvent) Type() EventType { return PROJECTION_SWITCHED }

// SettingsChangedEvent is sent when the scene settings are replaced
type SettingsChangedEvent struct {
	Previous config.Settings
	Current  config.Settings
}

func (e SettingsChangedEvent) Type() EventType { return SETTINGS_CHANGED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 16),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
