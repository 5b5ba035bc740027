package core

import (
	"strings"
	"time"
)

// Status is the stage of an applicant in the hiring pipeline.
type Status string

const (
	StatusNew       Status = "New"
	StatusScreening Status = "Screening"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusHired     Status = "Hired"
	StatusRejected  Status = "Rejected"
)

// Statuses returns the closed set of valid statuses in pipeline order.
func Statuses() []Status {
	return []Status{
		StatusNew,
		StatusScreening,
		StatusInterview,
		StatusOffer,
		StatusHired,
		StatusRejected,
	}
}

// ParseStatus returns the Status matching s exactly, or false.
// Matching is case-sensitive: bulk import defaults unmatched values to
// StatusNew instead of guessing.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Sources is the conventional set of applicant sources. It is a convention
// for forms and filters, not an enforced invariant: free text is accepted.
var Sources = []string{"Website", "LinkedIn", "Indeed", "Referral", "Career Fair", "Other"}

// DefaultSource is assigned when a bulk-imported row has no source.
const DefaultSource = "Website"

// Applicant is one applicant's stored record.
//
// ID, TrackingNumber, and AppliedDate are assigned once at creation and are
// immutable. Email is case-insensitively unique across all live records.
type Applicant struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"trackingNumber"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Position       string    `json:"position"`
	Status         Status    `json:"status"`
	Source         string    `json:"source"`
	Experience     int       `json:"experience"`
	Skills         []string  `json:"skills"`
	Education      string    `json:"education"`
	AppliedDate    time.Time `json:"appliedDate"`
	ResumeURL      string    `json:"resumeUrl,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}

// clone returns a deep copy so callers never alias store-owned state.
func (a Applicant) clone() Applicant {
	out := a
	if a.Skills != nil {
		out.Skills = make([]string, len(a.Skills))
		copy(out.Skills, a.Skills)
	}
	return out
}

// Draft is an unvalidated, not-yet-committed candidate record, typically
// from a form or a parsed CSV row.
type Draft struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Position   string   `json:"position"`
	Status     Status   `json:"status"`
	Source     string   `json:"source"`
	Experience int      `json:"experience"`
	Skills     []string `json:"skills"`
	Education  string   `json:"education"`
	ResumeURL  string   `json:"resumeUrl,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Valid reports whether the draft is well-formed enough to become a record:
// name and email must both be non-empty after trimming. Everything else is
// defaulted, never rejected.
func (d Draft) Valid() bool {
	return strings.TrimSpace(d.Name) != "" && strings.TrimSpace(d.Email) != ""
}

// Update is a partial field replacement for an existing record. Nil fields
// retain the prior value; non-nil fields replace it, so omitted versus
// explicitly-cleared is unambiguous.
type Update struct {
	Name       *string   `json:"name,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Position   *string   `json:"position,omitempty"`
	Status     *Status   `json:"status,omitempty"`
	Source     *string   `json:"source,omitempty"`
	Experience *int      `json:"experience,omitempty"`
	Skills     *[]string `json:"skills,omitempty"`
	Education  *string   `json:"education,omitempty"`
	ResumeURL  *string   `json:"resumeUrl,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
}

// Filter holds query criteria combined with AND. Empty criteria match
// everything. Search matches case-insensitively against name, email, and
// tracking number, and as a plain substring against phone.
type Filter struct {
	Search   string
	Status   string
	Source   string
	Position string
}

// BulkResult is the complete accounting of one BulkAdd call.
type BulkResult struct {
	Added      int      `json:"added"`
	Duplicates int      `json:"duplicates"`
	Errors     []string `json:"errors"`
}

// Stats summarizes the live collection for the dashboard.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[Status]int `json:"byStatus"`
}
