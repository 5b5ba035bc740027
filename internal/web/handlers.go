package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ats/internal/core"
	"ats/internal/web/templates"

	"github.com/go-chi/chi/v5"
)

// filterFromQuery extracts the applicant filter from URL query parameters.
func filterFromQuery(r *http.Request) core.Filter {
	q := r.URL.Query()
	return core.Filter{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Source:   q.Get("source"),
		Position: q.Get("position"),
	}
}

// handleDashboard renders the main dashboard page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := templates.DashboardData{
		Stats:      s.store.Stats(),
		Positions:  s.store.Positions(),
		Applicants: s.store.Filter(filterFromQuery(r)),
	}
	templates.Dashboard(data).Render(r.Context(), w)
}

// handleApplicantTable renders the applicant table partial for filter-driven
// refreshes.
func (s *Server) handleApplicantTable(w http.ResponseWriter, r *http.Request) {
	applicants := s.store.Filter(filterFromQuery(r))
	templates.ApplicantTable(applicants).Render(r.Context(), w)
}

// handleListApplicants returns applicants matching the filter as JSON.
func (s *Server) handleListApplicants(w http.ResponseWriter, r *http.Request) {
	applicants := s.store.Filter(filterFromQuery(r))
	writeJSON(w, map[string]interface{}{
		"applicants": applicants,
		"count":      len(applicants),
	})
}

// handleGetApplicant returns a single applicant by id.
func (s *Server) handleGetApplicant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	applicant, ok := s.store.GetByID(id)
	if !ok {
		s.respondError(w, r, fmt.Errorf("applicant not found: %s", id), http.StatusNotFound)
		return
	}

	writeJSON(w, applicant)
}

// handleCreateApplicant adds a single applicant from a JSON draft.
func (s *Server) handleCreateApplicant(w http.ResponseWriter, r *http.Request) {
	var draft core.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	if draft.Status != "" {
		if _, ok := core.ParseStatus(string(draft.Status)); !ok {
			s.respondError(w, r, fmt.Errorf("invalid status %q", draft.Status), http.StatusBadRequest)
			return
		}
	}

	applicant, err := s.store.Add(draft)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, core.ErrDuplicateEmail) {
			status = http.StatusConflict
		}
		s.respondError(w, r, err, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(applicant)
}

// handleUpdateApplicant applies a partial update to an existing applicant.
func (s *Server) handleUpdateApplicant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, ok := s.store.GetByID(id); !ok {
		s.respondError(w, r, fmt.Errorf("applicant not found: %s", id), http.StatusNotFound)
		return
	}

	var update core.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	if update.Status != nil {
		if _, ok := core.ParseStatus(string(*update.Status)); !ok {
			s.respondError(w, r, fmt.Errorf("invalid status %q", *update.Status), http.StatusBadRequest)
			return
		}
	}

	if err := s.store.Update(id, update); err != nil {
		s.respondError(w, r, err, http.StatusConflict)
		return
	}

	applicant, _ := s.store.GetByID(id)
	writeJSON(w, applicant)
}

// handleDeleteApplicant removes an applicant by id.
func (s *Server) handleDeleteApplicant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, ok := s.store.GetByID(id); !ok {
		s.respondError(w, r, fmt.Errorf("applicant not found: %s", id), http.StatusNotFound)
		return
	}

	s.store.Delete(id)

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"deleted"}`))
}

// handleBulkStatus moves a set of applicants to one status.
func (s *Server) handleBulkStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs    []string `json:"ids"`
		Status string   `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	status, ok := core.ParseStatus(req.Status)
	if !ok {
		s.respondError(w, r, fmt.Errorf("invalid status %q", req.Status), http.StatusBadRequest)
		return
	}
	if len(req.IDs) == 0 {
		s.respondError(w, r, fmt.Errorf("no applicants specified"), http.StatusBadRequest)
		return
	}

	updated := 0
	for _, id := range req.IDs {
		if _, ok := s.store.GetByID(id); !ok {
			continue
		}
		if err := s.store.Update(id, core.Update{Status: &status}); err == nil {
			updated++
		}
	}

	writeJSON(w, map[string]int{"updated": updated})
}

// handleCheckDuplicate probes whether an email is already taken. Used by the
// form for live validation while the user types.
func (s *Server) handleCheckDuplicate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email"`
		ExcludeID string `json:"excludeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]bool{
		"duplicate": s.store.IsDuplicate(req.Email, req.ExcludeID),
	})
}

// handleStats returns dashboard statistics as JSON.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Stats())
}

// handlePositions returns the distinct positions for filter dropdowns.
func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"positions": s.store.Positions()})
}

// handleNotifications returns the active toasts: HTML for the toast container
// poller, JSON for API clients.
func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	toasts := s.center.Active()

	if isHTMX(r) || strings.Contains(r.Header.Get("Accept"), "text/html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		templates.ToastList(toasts).Render(r.Context(), w)
		return
	}

	writeJSON(w, map[string]interface{}{"toasts": toasts})
}

// handleDismissNotification dismisses one toast by id, or all when no id is
// given.
func (s *Server) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		s.center.DismissAll()
	} else {
		s.center.Dismiss(req.ID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"dismissed"}`))
}
