// Package notify implements the in-process notification center: it consumes
// domain events from the core and keeps a bounded, dismissable list of
// toasts for the UI to poll. Display and dismissal timing belong here; the
// core only emits and never reads back.
package notify

import (
	"sync"
	"time"

	"ats/internal/core"

	"github.com/google/uuid"
)

// DefaultCapacity is the number of toasts retained before the oldest are
// dropped.
const DefaultCapacity = 20

// Toast is one displayed notification.
type Toast struct {
	ID           string             `json:"id"`
	Kind         core.Kind          `json:"kind"`
	Title        string             `json:"title"`
	Message      string             `json:"message"`
	StatusChange *core.StatusChange `json:"statusChange,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// Center receives domain events and retains the most recent ones as
// toasts. It implements core.Sink. Emit never calls back into the store,
// so it is safe to invoke while the store's lock is held.
type Center struct {
	mu     sync.Mutex
	cap    int
	toasts []Toast
}

// NewCenter creates a center retaining at most capacity toasts.
func NewCenter(capacity int) *Center {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Center{cap: capacity}
}

// Emit converts a domain event into a toast. Newest toasts come first;
// when over capacity the oldest are dropped.
func (c *Center) Emit(e core.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := Toast{
		ID:           uuid.New().String(),
		Kind:         e.Kind,
		Title:        e.Title,
		Message:      e.Message,
		StatusChange: e.StatusChange,
		CreatedAt:    time.Now(),
	}
	c.toasts = append([]Toast{t}, c.toasts...)
	if len(c.toasts) > c.cap {
		c.toasts = c.toasts[:c.cap]
	}
}

// Active returns the retained toasts, newest first.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Dismiss removes one toast by id. Unknown ids are a no-op.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.toasts {
		if c.toasts[i].ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// DismissAll clears every retained toast.
func (c *Center) DismissAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = nil
}
