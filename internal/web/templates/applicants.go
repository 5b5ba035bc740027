package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ats/internal/core"

	"github.com/a-h/templ"
)

// ApplicantTable renders the applicant table partial. Served standalone for
// HTMX/fetch refreshes and embedded in the dashboard page.
func ApplicantTable(applicants []core.Applicant) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(applicants) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No applicants match the current filters.</p>
`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="applicants">
<thead>
<tr><th>Tracking #</th><th>Name</th><th>Email</th><th>Position</th><th>Status</th><th>Source</th><th>Experience</th><th>Applied</th><th></th></tr>
</thead>
<tbody>
`); err != nil {
			return err
		}
		for _, a := range applicants {
			if err := applicantRow(a).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody>
</table>
`)
		return err
	})
}

// applicantRow renders one table row.
func applicantRow(a core.Applicant) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<tr data-id="%s">
<td class="tracking">%s</td>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td>%s</td>
<td>%d yr</td>
<td>%s</td>
<td><button class="delete" data-id="%s" aria-label="Delete">&times;</button></td>
</tr>
`,
			templ.EscapeString(a.ID),
			templ.EscapeString(a.TrackingNumber),
			templ.EscapeString(a.Name),
			templ.EscapeString(a.Email),
			templ.EscapeString(a.Position),
			StatusBadge(a.Status),
			templ.EscapeString(a.Source),
			a.Experience,
			a.AppliedDate.Format("2006-01-02"),
			templ.EscapeString(a.ID),
		)
		return err
	})
}

// StatusBadge returns the HTML for a status pill. Exposed for row fragments
// rendered outside the table.
func StatusBadge(st core.Status) string {
	return fmt.Sprintf(`<span class="badge badge-%s">%s</span>`,
		statusClass(st), templ.EscapeString(string(st)))
}

// statusClass maps a status to its css suffix.
func statusClass(st core.Status) string {
	return strings.ToLower(string(st))
}
