package core

// csv.go maps raw uploaded CSV text into applicant drafts.
//
// The first line is the header row. Header entries are trimmed and matched
// case-insensitively against the recognized column names; unrecognized
// headers are ignored, and recognized columns that are absent leave the
// field at its default for every row. Parsing uses encoding/csv, so quoted
// fields containing commas are handled correctly (the original line-split
// behavior silently broke on them).
//
// Rows whose resulting name or email is empty are dropped here, before the
// store ever sees them: they could never become valid records.

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HeaderIndex maps recognized column names (lowercase) to their position in
// each CSV row.
type HeaderIndex map[string]int

// recognizedColumns are the header names the parser understands. Both
// "resumeurl" and "resume_url" are accepted for the resume column.
var recognizedColumns = []string{
	"name", "email", "phone", "position", "status", "source",
	"experience", "skills", "education", "resumeurl", "resume_url", "notes",
}

// MakeHeaderIndex builds a lookup from recognized header names to row
// positions. Unrecognized headers are dropped.
func MakeHeaderIndex(header []string) HeaderIndex {
	recognized := make(map[string]bool, len(recognizedColumns))
	for _, c := range recognizedColumns {
		recognized[c] = true
	}

	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if recognized[key] {
			idx[key] = i
		}
	}
	return idx
}

// CleanCell trims whitespace and any surrounding quotes from a cell value.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}

// ParseRows parses uploaded CSV text into applicant drafts.
//
// The returned slice is finite and restartable: callers may range over it
// as many times as they like. Rows with an empty name or email are dropped.
// An error is returned only for structurally malformed CSV; text with a
// header but no usable rows yields an empty slice and nil error.
func ParseRows(text string) ([]Draft, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid csv: %w", err)
	}
	idx := MakeHeaderIndex(header)

	var drafts []Draft
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid csv: %w", err)
		}
		if isEmptyRow(row) {
			continue
		}

		d := draftFromRow(row, idx)
		if !d.Valid() {
			continue
		}
		drafts = append(drafts, d)
	}

	return drafts, nil
}

// draftFromRow maps one data row into a draft, applying the bulk-import
// defaulting policy for every field except name and email.
func draftFromRow(row []string, idx HeaderIndex) Draft {
	cell := func(col string) string {
		pos, ok := idx[col]
		if !ok || pos >= len(row) {
			return ""
		}
		return CleanCell(row[pos])
	}

	resume := cell("resumeurl")
	if resume == "" {
		resume = cell("resume_url")
	}

	return Draft{
		Name:       cell("name"),
		Email:      cell("email"),
		Phone:      cell("phone"),
		Position:   cell("position"),
		Status:     defaultStatus(cell("status")),
		Source:     defaultSource(cell("source")),
		Experience: defaultExperience(cell("experience")),
		Skills:     SplitSkills(cell("skills")),
		Education:  cell("education"),
		ResumeURL:  resume,
		Notes:      cell("notes"),
	}
}

// SplitSkills splits a semicolon-separated skill list, trimming each entry
// and dropping empties. Returns an empty slice for blank input.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ";")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// defaultStatus returns the status matching raw exactly, or StatusNew.
func defaultStatus(raw string) Status {
	if st, ok := ParseStatus(raw); ok {
		return st
	}
	return StatusNew
}

// defaultSource returns raw, or DefaultSource when empty.
func defaultSource(raw string) string {
	if raw == "" {
		return DefaultSource
	}
	return raw
}

// defaultExperience parses raw as a non-negative integer, defaulting to 0.
func defaultExperience(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
