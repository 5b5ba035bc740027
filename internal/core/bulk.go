package core

// bulk.go implements the CSV import path: many drafts, one atomic commit.

import (
	"fmt"
	"time"
)

// BulkAdd processes drafts in input order with partial-failure semantics:
// a bad row never aborts the rest of the batch.
//
// Each draft is either skipped with a 1-indexed row error (missing name or
// email), skipped as a duplicate (colliding with the store or with a row
// already accepted earlier in this same call), or accepted. Accepted rows
// receive ids and one contiguous increasing block of tracking numbers, and
// are committed in a single insertion at the head of the collection, so
// readers never observe a partially-applied batch.
//
// After processing, a summary event set is emitted: success when anything
// was added, a warning when duplicates were skipped, and an error when
// nothing was added but errors occurred.
func (s *Store) BulkAdd(drafts []Draft) BulkResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := BulkResult{Errors: []string{}}
	now := time.Now()

	var accepted []Applicant
	inBatch := make(map[string]bool, len(drafts))

	for i, d := range drafts {
		row := i + 1

		if !d.Valid() {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: missing required name or email", row))
			continue
		}

		if s.isDuplicateLocked(d.Email, "") {
			result.Duplicates++
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: duplicate email %s", row, d.Email))
			continue
		}

		// Rows accepted earlier in this call are not yet in the store's
		// index, so they need their own check.
		if inBatch[foldEmail(d.Email)] {
			result.Duplicates++
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d: duplicate email %s in batch", row, d.Email))
			continue
		}

		a := s.buildRecord(d, now)
		accepted = append(accepted, a)
		inBatch[foldEmail(a.Email)] = true
		result.Added++
	}

	// Single atomic commit of the whole batch, batch order preserved at
	// the head of the collection.
	if len(accepted) > 0 {
		s.applicants = append(accepted, s.applicants...)
		for _, a := range accepted {
			s.byEmail[foldEmail(a.Email)] = a.ID
		}
		s.version++
	}

	s.emitBulkSummary(result)
	return result
}

// buildRecord materializes an accepted draft without inserting it.
// Caller must hold the write lock; the tracking counter advances so the
// batch gets a contiguous block.
func (s *Store) buildRecord(d Draft, at time.Time) Applicant {
	a := Applicant{
		ID:             newID(),
		TrackingNumber: s.nextTracking(),
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Position:       d.Position,
		Status:         d.Status,
		Source:         d.Source,
		Experience:     d.Experience,
		Skills:         d.Skills,
		Education:      d.Education,
		AppliedDate:    at,
		ResumeURL:      d.ResumeURL,
		Notes:          d.Notes,
	}
	if a.Status == "" {
		a.Status = StatusNew
	}
	if a.Source == "" {
		a.Source = DefaultSource
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}
	return a
}

func (s *Store) emitBulkSummary(result BulkResult) {
	if result.Added > 0 {
		s.sink.Emit(Event{
			Kind:    KindSuccess,
			Title:   "Bulk Upload Complete",
			Message: fmt.Sprintf("Successfully added %d applicant(s) to the system.", result.Added),
		})
	}
	if result.Duplicates > 0 {
		s.sink.Emit(Event{
			Kind:    KindWarning,
			Title:   "Duplicates Skipped",
			Message: fmt.Sprintf("%d duplicate email(s) were skipped during upload.", result.Duplicates),
		})
	}
	if result.Added == 0 && len(result.Errors) > 0 {
		s.sink.Emit(Event{
			Kind:    KindError,
			Title:   "Upload Failed",
			Message: "No applicants were added due to validation errors.",
		})
	}
}
