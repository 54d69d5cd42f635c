package live

import "learnstyle/internal/questionnaire"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventNavigate asks the UI to leave the questionnaire.
	EventNavigate EventKind = iota
	// EventScrollTop asks the UI to move the cursor to the first item.
	EventScrollTop
)

// Event carries a UI update payload.
type Event struct {
	Kind  EventKind
	Route questionnaire.Route
}
