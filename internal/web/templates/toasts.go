package templates

import (
	"context"
	"fmt"
	"io"

	"ats/internal/notify"

	"github.com/a-h/templ"
)

// ToastList renders the active notification toasts, newest first.
func ToastList(toasts []notify.Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, t := range toasts {
			if _, err := fmt.Fprintf(w, `<div class="toast toast-%s" data-id="%s">
<strong>%s</strong>
<p>%s</p>
<button class="dismiss" data-id="%s" aria-label="Dismiss">&times;</button>
</div>
`,
				templ.EscapeString(string(t.Kind)),
				templ.EscapeString(t.ID),
				templ.EscapeString(t.Title),
				templ.EscapeString(t.Message),
				templ.EscapeString(t.ID),
			); err != nil {
				return err
			}
		}
		return nil
	})
}
