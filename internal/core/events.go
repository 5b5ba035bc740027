package core

// events.go defines the domain events emitted by the store and the sink
// contract that consumes them. The sink owns display and dismissal timing;
// the core only emits and never queries back.

// Kind classifies an event for presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// StatusChange carries the old and new status on a status transition.
type StatusChange struct {
	Old Status `json:"old"`
	New Status `json:"new"`
}

// Event is a domain event describing the outcome of a store operation.
type Event struct {
	Kind         Kind          `json:"kind"`
	Title        string        `json:"title"`
	Message      string        `json:"message"`
	StatusChange *StatusChange `json:"statusChange,omitempty"`
}

// Sink receives domain events. Implementations must not call back into the
// store from Emit; emissions happen while the store's lock is held.
type Sink interface {
	Emit(Event)
}

// DiscardSink ignores every event. Useful for tests and headless callers.
type DiscardSink struct{}

func (DiscardSink) Emit(Event) {}
