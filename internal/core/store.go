package core

import (
	"errors"
	"strings"
	"sync"
)

// ErrDuplicateEmail is returned when an operation would leave two live
// records sharing a case-folded email.
var ErrDuplicateEmail = errors.New("duplicate email")

// Store holds the ordered collection of applicant records.
//
// The collection is process-scoped state with application lifetime: it is
// seeded once at startup and has no reload or reset operation besides the
// CRUD API. Records are kept most-recent-first (new records are inserted at
// the head). A single RWMutex guards the whole collection, so every public
// operation is atomic even on a multi-threaded host: duplicate checking and
// commit for a given call complete before any other call is observed.
type Store struct {
	mu   sync.RWMutex
	sink Sink

	applicants []Applicant
	byEmail    map[string]string // lower(email) -> record id

	// maxTracking is the highest numeric tracking suffix ever assigned.
	// It never decreases, even when records are deleted, so tracking
	// numbers stay strictly increasing and are never reused.
	maxTracking int

	version uint64
}

// NewStore creates an empty store emitting events to sink. A nil sink
// discards events.
func NewStore(sink Sink) *Store {
	if sink == nil {
		sink = DiscardSink{}
	}
	return &Store{
		sink:        sink,
		byEmail:     make(map[string]string),
		maxTracking: trackingFloor,
	}
}

// Seed initializes the store from records produced by a bootstrap
// generator. The seed batch is trusted: emails are assumed unique and
// tracking numbers valid, and no events are emitted.
func (s *Store) Seed(records []Applicant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range records {
		s.applicants = append(s.applicants, a.clone())
		s.byEmail[foldEmail(a.Email)] = a.ID
		if n, ok := parseTracking(a.TrackingNumber); ok && n > s.maxTracking {
			s.maxTracking = n
		}
	}
	s.version++
}

// IsDuplicate reports whether a live record other than excludeID has the
// given email, compared case-insensitively. It never mutates anything and
// is cheap enough to call on every keystroke of an email field. Pass an
// empty excludeID when creating.
func (s *Store) IsDuplicate(email, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isDuplicateLocked(email, excludeID)
}

// isDuplicateLocked is IsDuplicate for callers already holding the lock.
func (s *Store) isDuplicateLocked(email, excludeID string) bool {
	id, ok := s.byEmail[foldEmail(email)]
	return ok && id != excludeID
}

// GetByID returns a copy of the live record with the given id.
func (s *Store) GetByID(id string) (Applicant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.applicants[i].clone(), true
	}
	return Applicant{}, false
}

// All returns a copy of every live record in store order
// (most-recent-first).
func (s *Store) All() []Applicant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.applicants)
}

// Count returns the number of live records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.applicants)
}

// Version returns a counter that increases on every mutation. Callers can
// use it to detect changes between reads (e.g. for cache keys or UI
// refresh polling).
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// indexOf returns the position of the record with the given id, or -1.
// Caller must hold the lock.
func (s *Store) indexOf(id string) int {
	for i := range s.applicants {
		if s.applicants[i].ID == id {
			return i
		}
	}
	return -1
}

// nextTracking reserves and returns the next tracking number.
// Caller must hold the write lock.
func (s *Store) nextTracking() string {
	s.maxTracking++
	return formatTracking(s.maxTracking)
}

func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cloneAll(in []Applicant) []Applicant {
	out := make([]Applicant, len(in))
	for i := range in {
		out[i] = in[i].clone()
	}
	return out
}
