package ecs

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in an EventBus. This value is fixed at 256.
const MaxEventTypes = 256

// EventBus provides a simple, type-safe event bus for decoupled
// communication between systems. Subscribers register per event type and
// Publish calls them synchronously in subscription order; publishing is
// allocation-free.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]interface{}
	nextEventTypeID uint8
}

// Subscribe registers a handler function to be called when an event of type
// T is published.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function taking a single argument of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	id := bus.getEventTypeID(t)
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]interface{}, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts an event of type T to all registered handlers for that
// type. Handlers run synchronously in the order they were subscribed.
// Publishing a type with no subscribers is a no-op.
//
// Parameters:
//   - bus: The EventBus instance to publish to.
//   - event: The event value sent to handlers.
func Publish[T any](bus *EventBus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := bus.eventTypeMap[t]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(event)
		}
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	id := bus.nextEventTypeID
	bus.nextEventTypeID++
	if int(id) >= MaxEventTypes {
		panic("ecs: too many event types")
	}
	bus.eventTypeMap[t] = id
	return id
}
