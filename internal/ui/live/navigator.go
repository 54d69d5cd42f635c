package live

import (
	"sync"

	"learnstyle/internal/questionnaire"
)

// Navigator forwards controller navigation to the UI as events.
type Navigator struct {
	mu     sync.Mutex
	events chan Event
	closed bool
}

// NewNavigator returns a Navigator with a buffered event channel.
func NewNavigator() *Navigator {
	return &Navigator{events: make(chan Event, 16)}
}

// Events returns the channel consumed by the model.
func (n *Navigator) Events() <-chan Event {
	return n.events
}

// Navigate implements questionnaire.Navigator.
func (n *Navigator) Navigate(route questionnaire.Route) {
	n.send(Event{Kind: EventNavigate, Route: route})
}

// ScrollToTop implements questionnaire.Navigator.
func (n *Navigator) ScrollToTop() {
	n.send(Event{Kind: EventScrollTop})
}

// Close stops event delivery. Later navigation is dropped.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	close(n.events)
}

// send enqueues an event without blocking the caller.
func (n *Navigator) send(event Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	select {
	case n.events <- event:
	default:
	}
}
