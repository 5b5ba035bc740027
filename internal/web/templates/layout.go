// Package templates provides templ components for the applicant tracking UI.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// page wraps body in the common HTML shell.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="topbar">
<a href="/" class="brand">Applicant Tracker</a>
<nav>
<a href="/api/template">CSV Template</a>
<a href="/api/export">Export</a>
</nav>
</header>
<main class="container">
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
<div id="toasts" class="toasts"></div>
<script src="/static/app.js"></script>
</body>
</html>
`)
		return err
	})
}
