package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ErrorAlert renders an inline error fragment for HTMX swaps. The code gives
// users something concrete to quote to support.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="alert alert-error" role="alert">
<strong>%s</strong>
`, templ.EscapeString(message)); err != nil {
			return err
		}
		if action != "" {
			if _, err := fmt.Fprintf(w, `<p>%s</p>
`, templ.EscapeString(action)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<span class="code">%s</span>
</div>
`, templ.EscapeString(code))
		return err
	})
}
