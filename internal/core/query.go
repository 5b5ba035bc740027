package core

// query.go implements the read-only queries over the collection. Each query
// works on a snapshot taken under the read lock and returns fresh copies,
// so results stay stable while the UI holds them and repeated calls with
// unchanged criteria and state return equal results. All of them are cheap
// enough to re-run on every keystroke of a live search box.

import (
	"sort"
	"strings"
)

// Filter returns the live records matching the criteria, in store order
// (most-recent-first). Criteria combine with AND; absent criteria match
// everything. The store is never mutated.
func (s *Store) Filter(f Filter) []Applicant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Applicant
	for i := range s.applicants {
		if matches(&s.applicants[i], f) {
			out = append(out, s.applicants[i].clone())
		}
	}
	return out
}

func matches(a *Applicant, f Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		hit := strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Email), q) ||
			strings.Contains(strings.ToLower(a.TrackingNumber), q) ||
			strings.Contains(a.Phone, f.Search)
		if !hit {
			return false
		}
	}
	if f.Status != "" && string(a.Status) != f.Status {
		return false
	}
	if f.Source != "" && a.Source != f.Source {
		return false
	}
	if f.Position != "" && a.Position != f.Position {
		return false
	}
	return true
}

// Stats returns the record total and a count per status for the dashboard.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Total:    len(s.applicants),
		ByStatus: make(map[Status]int, len(Statuses())),
	}
	for _, status := range Statuses() {
		st.ByStatus[status] = 0
	}
	for i := range s.applicants {
		st.ByStatus[s.applicants[i].Status]++
	}
	return st
}

// Recent returns up to n records sorted by applied date, newest first.
func (s *Store) Recent(n int) []Applicant {
	s.mu.RLock()
	recent := cloneAll(s.applicants)
	s.mu.RUnlock()

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].AppliedDate.After(recent[j].AppliedDate)
	})
	if n >= 0 && n < len(recent) {
		recent = recent[:n]
	}
	return recent
}

// Positions returns the distinct positions among live records, sorted,
// for filter dropdowns.
func (s *Store) Positions() []string {
	s.mu.RLock()
	seen := make(map[string]bool)
	for i := range s.applicants {
		if p := s.applicants[i].Position; p != "" {
			seen[p] = true
		}
	}
	s.mu.RUnlock()

	positions := make([]string, 0, len(seen))
	for p := range seen {
		positions = append(positions, p)
	}
	sort.Strings(positions)
	return positions
}
