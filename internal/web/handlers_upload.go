package web

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ats/internal/core"
	"ats/internal/logging"
)

// templateColumns is the canonical header row for bulk uploads. The parser
// also accepts resume_url and ignores column order, but this is what we hand
// out.
var templateColumns = []string{
	"Name", "Email", "Phone", "Position", "Status", "Source",
	"Experience", "Skills", "Education", "ResumeURL", "Notes",
}

// templateExampleRow shows the expected value formats, notably the
// semicolon-separated skill list.
var templateExampleRow = []string{
	"Jane Doe", "jane.doe@example.com", "+15551234567", "Software Engineer",
	"New", "LinkedIn", "5", "Go; SQL; Docker", "Bachelor's Degree",
	"https://example.com/resume.pdf", "Strong referral",
}

// handleUpload processes a bulk CSV upload: parse rows, add what can be
// added, and report the full accounting.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		s.respondError(w, r, fmt.Errorf("file too large or invalid form: %w", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, fmt.Errorf("no file provided"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, fmt.Errorf("failed to read file: %w", err), http.StatusInternalServerError)
		return
	}

	logger := logging.WithFields(r.Context(),
		"filename", header.Filename,
		"size", header.Size,
	)
	logger.Info("upload started")

	drafts, err := core.ParseRows(string(data))
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if len(drafts) == 0 {
		s.respondError(w, r, fmt.Errorf("no valid applicant data in file"), http.StatusBadRequest)
		return
	}
	if len(drafts) > s.cfg.Upload.MaxRows {
		s.respondError(w, r,
			fmt.Errorf("file too large: %d rows exceeds the %d row limit", len(drafts), s.cfg.Upload.MaxRows),
			http.StatusBadRequest)
		return
	}

	result := s.store.BulkAdd(drafts)

	logger.Info("upload completed",
		"added", result.Added,
		"duplicates", result.Duplicates,
		"errors", len(result.Errors),
	)

	writeJSON(w, result)
}

// handleDownloadTemplate returns the canonical CSV template with one example
// row.
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="applicant_template.csv"`)

	csvWriter := csv.NewWriter(w)
	csvWriter.Write(templateColumns)
	csvWriter.Write(templateExampleRow)
	csvWriter.Flush()
}

// handleExport streams the applicants matching the current filter as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	applicants := s.store.Filter(filterFromQuery(r))

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("applicants_%s.csv", timestamp)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	csvWriter := csv.NewWriter(w)

	header := append([]string{"TrackingNumber"}, templateColumns...)
	header = append(header, "AppliedDate")
	csvWriter.Write(header)

	for _, a := range applicants {
		csvWriter.Write([]string{
			a.TrackingNumber,
			a.Name,
			a.Email,
			a.Phone,
			a.Position,
			string(a.Status),
			a.Source,
			strconv.Itoa(a.Experience),
			strings.Join(a.Skills, "; "),
			a.Education,
			a.ResumeURL,
			a.Notes,
			a.AppliedDate.Format("2006-01-02"),
		})
	}

	csvWriter.Flush()
}
