package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScrolled       EventType = "Scrolled"
	EventQuitRequested  EventType = "QuitRequested"
	EventResized        EventType = "Resized"
	EventSessionStarted EventType = "SessionStarted"
	EventSessionEnded   EventType = "SessionEnded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScrolledEvent is emitted when the scroll position changes
type ScrolledEvent struct {
	From      int
	To        int
	MaxScroll int
	Action    string
}

func (e ScrolledEvent) Type() EventType { return EventScrolled }

// QuitRequestedEvent is emitted when the user asks to leave
type QuitRequestedEvent struct {
	Position int
}

func (e QuitRequestedEvent) Type() EventType { return EventQuitRequested }

// ResizedEvent is emitted when a frame sees a different window size than the previous one
type ResizedEvent struct {
	OldWindow int
	NewWindow int
}

func (e ResizedEvent) Type() EventType { return EventResized }

// SessionStartedEvent is emitted before the first paint
type SessionStartedEvent struct {
	Mode  string
	Lines int
}

func (e SessionStartedEvent) Type() EventType { return EventSessionStarted }

// SessionEndedEvent is emitted when a loop terminates
type SessionEndedEvent struct {
	Stats SessionStats
}

func (e SessionEndedEvent) Type() EventType { return EventSessionEnded }
