package rules

import (
	"sync"
)

// EventType indicates the category of a rules event.
type EventType string

const (
	// Game/Turn events
	EventGameStarted  EventType = "GAME_STARTED"
	EventTurnEnded    EventType = "TURN_ENDED"
	EventRoundStarted EventType = "ROUND_STARTED"
	EventManaGranted  EventType = "MANA_GRANTED"
	EventCardDrawn    EventType = "CARD_DRAWN"

	// Board events
	EventCardPlaced     EventType = "CARD_PLACED"
	EventCardAttacked   EventType = "CARD_ATTACKED"
	EventCardEliminated EventType = "CARD_ELIMINATED"
	EventAbilityUsed    EventType = "ABILITY_USED"

	// Hero events
	EventHeroAttacked    EventType = "HERO_ATTACKED"
	EventHeroAbilityUsed EventType = "HERO_ABILITY_USED"
	EventHeroKilled      EventType = "HERO_KILLED"

	// Rejected commands
	EventActionRejected EventType = "ACTION_REJECTED"
)

// Event represents a state change that other subsystems may react to.
type Event struct {
	Type     EventType
	Player   Seat   // Seat that caused the event
	Command  string // Originating command name
	SourceID string // Name of the acting card or hero
	TargetID string // Name of the affected card or hero
	Row      int
	Col      int
	Amount   int    // Damage, mana or health delta
	Data     string // Additional string data, e.g. the rejection reason
}

// NewEvent creates a new event with common fields populated.
func NewEvent(eventType EventType, player Seat, sourceID, targetID string) Event {
	return Event{
		Type:     eventType,
		Player:   player,
		SourceID: sourceID,
		TargetID: targetID,
	}
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

// TypedListener defines a callback that reacts to a specific event type.
type TypedListener struct {
	Handle    int
	EventType EventType
	Callback  func(Event)
}

// EventBus provides a synchronous publish/subscribe implementation with type filtering.
type EventBus struct {
	mu             sync.RWMutex
	listeners      map[int]Listener
	order          []int
	typedListeners map[EventType][]TypedListener
	nextHandle     int
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners:      make(map[int]Listener),
		typedListeners: make(map[EventType][]TypedListener),
	}
}

// Subscribe registers a listener for all events and returns a handle.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	bus.order = append(bus.order, handle)
	return handle
}

// SubscribeTyped registers a listener for a specific event type.
func (bus *EventBus) SubscribeTyped(eventType EventType, callback func(Event)) int {
	if callback == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.typedListeners[eventType] = append(bus.typedListeners[eventType], TypedListener{
		Handle:    handle,
		EventType: eventType,
		Callback:  callback,
	})
	return handle
}

// Unsubscribe removes the listener identified by the provided handle.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	if _, ok := bus.listeners[handle]; ok {
		delete(bus.listeners, handle)
		for i, h := range bus.order {
			if h == handle {
				bus.order = append(bus.order[:i], bus.order[i+1:]...)
				break
			}
		}
		return
	}
	for eventType, listeners := range bus.typedListeners {
		for i := len(listeners) - 1; i >= 0; i-- {
			if listeners[i].Handle == handle {
				bus.typedListeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to all registered listeners synchronously,
// in subscription order.
func (bus *EventBus) Publish(event Event) {
	bus.mu.RLock()
	listeners := make([]Listener, 0, len(bus.order))
	for _, h := range bus.order {
		listeners = append(listeners, bus.listeners[h])
	}
	typed := append([]TypedListener(nil), bus.typedListeners[event.Type]...)
	bus.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
	for _, listener := range typed {
		listener.Callback(event)
	}
}
