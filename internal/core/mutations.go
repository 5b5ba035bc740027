package core

// mutations.go implements the single-record write operations. Bulk import
// lives in bulk.go.

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDraft is returned by Add when the draft is missing a required
// field. Bulk import never returns it; invalid rows are skipped and
// reported in the batch error list instead.
var ErrInvalidDraft = errors.New("required field missing: name and email are required")

// Add validates the draft against the uniqueness invariant, assigns an id
// and tracking number, stamps the applied date, and inserts the record at
// the head of the collection. Returns the committed record.
//
// Fails with ErrDuplicateEmail (and emits an error event) when a live
// record already has the email, and with ErrInvalidDraft when name or
// email is blank.
func (s *Store) Add(d Draft) (Applicant, error) {
	if !d.Valid() {
		return Applicant{}, ErrInvalidDraft
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isDuplicateLocked(d.Email, "") {
		s.sink.Emit(Event{
			Kind:    KindError,
			Title:   "Duplicate Email",
			Message: fmt.Sprintf("An applicant with email %s already exists in the system.", d.Email),
		})
		return Applicant{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, d.Email)
	}

	a := s.buildRecord(d, time.Now())
	s.applicants = append([]Applicant{a}, s.applicants...)
	s.byEmail[foldEmail(a.Email)] = a.ID
	s.version++

	s.sink.Emit(Event{
		Kind:    KindSuccess,
		Title:   "Applicant Added",
		Message: fmt.Sprintf("%s has been successfully added to the system.", a.Name),
	})
	return a.clone(), nil
}

// Update merges the non-nil fields of u into the record with the given id.
//
// An unknown id is a silent no-op: the UI only ever references ids it
// already holds. If the email is changing and would collide with another
// live record, the whole update is rejected, an error event is emitted,
// and ErrDuplicateEmail is returned with no field applied. A successful
// update emits an Updated event, plus a StatusChanged event when the
// status actually transitioned.
func (s *Store) Update(id string, u Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	prev := s.applicants[i]

	if u.Email != nil && *u.Email != prev.Email && s.isDuplicateLocked(*u.Email, id) {
		s.sink.Emit(Event{
			Kind:    KindError,
			Title:   "Duplicate Email",
			Message: fmt.Sprintf("An applicant with email %s already exists in the system.", *u.Email),
		})
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, *u.Email)
	}

	next := prev.clone()
	applyUpdate(&next, u)

	if next.Email != prev.Email {
		delete(s.byEmail, foldEmail(prev.Email))
		s.byEmail[foldEmail(next.Email)] = id
	}
	s.applicants[i] = next
	s.version++

	s.sink.Emit(Event{
		Kind:    KindSuccess,
		Title:   "Applicant Updated",
		Message: fmt.Sprintf("%s's information has been updated successfully.", prev.Name),
	})

	if u.Status != nil && next.Status != prev.Status {
		s.sink.Emit(Event{
			Kind:    KindInfo,
			Title:   "Status Changed",
			Message: fmt.Sprintf("%s's status changed from %s to %s.", prev.Name, prev.Status, next.Status),
			StatusChange: &StatusChange{
				Old: prev.Status,
				New: next.Status,
			},
		})
	}
	return nil
}

// applyUpdate performs the shallow per-field merge.
func applyUpdate(a *Applicant, u Update) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Email != nil {
		a.Email = *u.Email
	}
	if u.Phone != nil {
		a.Phone = *u.Phone
	}
	if u.Position != nil {
		a.Position = *u.Position
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Source != nil {
		a.Source = *u.Source
	}
	if u.Experience != nil {
		a.Experience = *u.Experience
	}
	if u.Skills != nil {
		skills := make([]string, len(*u.Skills))
		copy(skills, *u.Skills)
		a.Skills = skills
	}
	if u.Education != nil {
		a.Education = *u.Education
	}
	if u.ResumeURL != nil {
		a.ResumeURL = *u.ResumeURL
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
}

// Delete removes the record permanently. There is no tombstone and no
// undo; an unknown id is a silent no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	removed := s.applicants[i]

	s.applicants = append(s.applicants[:i], s.applicants[i+1:]...)
	delete(s.byEmail, foldEmail(removed.Email))
	s.version++

	s.sink.Emit(Event{
		Kind:    KindWarning,
		Title:   "Applicant Deleted",
		Message: fmt.Sprintf("%s has been removed from the system.", removed.Name),
	})
}
