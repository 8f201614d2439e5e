package widgets

// Event is a multicast notification carrying a value of type T.
//
// Listeners run synchronously, in registration order, on the goroutine that
// calls Fire. A listener must not mutate the widget that fired the event
// while the event is being delivered.
type Event[T any] struct {
	slots  []*eventSlot[T]
	nextID uint64
}

type eventSlot[T any] struct {
	id uint64
	fn func(T)
}

// Connection identifies one subscription. Disconnect removes it.
type Connection struct {
	disconnect func()
}

// Disconnect removes the subscription. Calling it more than once is harmless.
func (c Connection) Disconnect() {
	if c.disconnect != nil {
		c.disconnect()
	}
}

// Subscribe registers fn and returns its connection.
func (e *Event[T]) Subscribe(fn func(T)) Connection {
	e.nextID++
	id := e.nextID
	e.slots = append(e.slots, &eventSlot[T]{id: id, fn: fn})
	return Connection{disconnect: func() { e.remove(id) }}
}

func (e *Event[T]) remove(id uint64) {
	for i, s := range e.slots {
		if s.id == id {
			// copy so a Fire in progress keeps iterating its own snapshot
			slots := make([]*eventSlot[T], 0, len(e.slots)-1)
			slots = append(slots, e.slots[:i]...)
			e.slots = append(slots, e.slots[i+1:]...)
			return
		}
	}
}

// Fire delivers v to every listener.
func (e *Event[T]) Fire(v T) {
	for _, s := range e.slots {
		s.fn(v)
	}
}

// Len returns the number of active subscriptions.
func (e *Event[T]) Len() int {
	return len(e.slots)
}
