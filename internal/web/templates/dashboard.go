package templates

import (
	"context"
	"fmt"
	"io"

	"ats/internal/core"

	"github.com/a-h/templ"
)

// DashboardData carries everything the dashboard page renders.
type DashboardData struct {
	Stats      core.Stats
	Positions  []string
	Applicants []core.Applicant
}

// Dashboard renders the full dashboard page: stat cards, filter controls,
// upload form, and the applicant table.
func Dashboard(data DashboardData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := statCards(data.Stats).Render(ctx, w); err != nil {
			return err
		}
		if err := filterBar(data.Positions).Render(ctx, w); err != nil {
			return err
		}
		if err := uploadForm().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div id="applicant-table">`); err != nil {
			return err
		}
		if err := ApplicantTable(data.Applicants).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
	return page("Applicant Tracker", body)
}

// statCards renders the per-status count cards.
func statCards(stats core.Stats) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="stats">
<div class="stat-card"><span class="stat-value">%d</span><span class="stat-label">Total</span></div>
`, stats.Total); err != nil {
			return err
		}
		for _, st := range core.Statuses() {
			if _, err := fmt.Fprintf(w, `<div class="stat-card stat-%s"><span class="stat-value">%d</span><span class="stat-label">%s</span></div>
`, statusClass(st), stats.ByStatus[st], templ.EscapeString(string(st))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>
`)
		return err
	})
}

// filterBar renders the search box and filter dropdowns. The table partial
// reloads via fetch on change (see app.js).
func filterBar(positions []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="filters" id="filter-bar">
<input type="search" name="search" placeholder="Search name, email, phone, or tracking number">
<select name="status">
<option value="">All Statuses</option>
`); err != nil {
			return err
		}
		for _, st := range core.Statuses() {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>
`, templ.EscapeString(string(st)), templ.EscapeString(string(st))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
<select name="source">
<option value="">All Sources</option>
`); err != nil {
			return err
		}
		for _, src := range core.Sources {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>
`, templ.EscapeString(src), templ.EscapeString(src)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
<select name="position">
<option value="">All Positions</option>
`); err != nil {
			return err
		}
		for _, pos := range positions {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>
`, templ.EscapeString(pos), templ.EscapeString(pos)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select>
</section>
`)
		return err
	})
}

// uploadForm renders the bulk CSV upload form.
func uploadForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="upload">
<form id="upload-form" action="/api/upload" method="post" enctype="multipart/form-data">
<input type="file" name="file" accept=".csv,text/csv">
<button type="submit">Upload CSV</button>
<a href="/api/template" class="hint">Download template</a>
</form>
</section>
`)
		return err
	})
}
