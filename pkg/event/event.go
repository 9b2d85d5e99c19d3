// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-monkeyhunt/pkg/physics"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	SceneReset      Type = "scene_reset"
	CanvasResized   Type = "canvas_resized"
	ProjectileFired Type = "projectile_fired"
	TargetHit       Type = "target_hit"
	DragStarted     Type = "drag_started"
	DragEnded       Type = "drag_ended"
	GravityChanged  Type = "gravity_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies one registered handler
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type. Calling Cancel
// on the returned subscription removes the handler.
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish sends an event to all subscribed handlers synchronously, in
// subscription order. Handlers may subscribe or cancel while running.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// SceneEvent reports a reset or a canvas resize
type SceneEvent struct {
	BaseEvent
	Width  float64
	Height float64
}

// NewSceneEvent creates a new scene event
func NewSceneEvent(eventType Type, source interface{}, width, height float64) *SceneEvent {
	return &SceneEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Width:  width,
		Height: height,
	}
}

// ShotEvent contains information about a fired projectile
type ShotEvent struct {
	BaseEvent
	ShotID   string
	Origin   physics.Vector2D
	Velocity physics.Vector2D
}

// NewShotEvent creates a new shot event
func NewShotEvent(source interface{}, shotID string, origin, velocity physics.Vector2D) *ShotEvent {
	return &ShotEvent{
		BaseEvent: BaseEvent{
			EventType: ProjectileFired,
			Source:    source,
		},
		ShotID:   shotID,
		Origin:   origin,
		Velocity: velocity,
	}
}

// HitEvent is published when the hit indicator switches on
type HitEvent struct {
	BaseEvent
	ShotID   string
	Frame    uint64
	Distance float64
	Position physics.Vector2D
}

// NewHitEvent creates a new hit event
func NewHitEvent(source interface{}, shotID string, frame uint64, distance float64, position physics.Vector2D) *HitEvent {
	return &HitEvent{
		BaseEvent: BaseEvent{
			EventType: TargetHit,
			Source:    source,
		},
		ShotID:   shotID,
		Frame:    frame,
		Distance: distance,
		Position: position,
	}
}

// DragEvent reports the start or end of a pointer drag
type DragEvent struct {
	BaseEvent
	Handle string
}

// NewDragEvent creates a new drag event
func NewDragEvent(eventType Type, source interface{}, handle string) *DragEvent {
	return &DragEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Handle: handle,
	}
}

// GravityEvent reports a gravity preset change
type GravityEvent struct {
	BaseEvent
	Preset string
	Value  float64
}

// NewGravityEvent creates a new gravity event
func NewGravityEvent(source interface{}, preset string, value float64) *GravityEvent {
	return &GravityEvent{
		BaseEvent: BaseEvent{
			EventType: GravityChanged,
			Source:    source,
		},
		Preset: preset,
		Value:  value,
	}
}
