package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// UserBadge shows who is signed in. It replaces the layout's user slot.
func UserBadge(slotID, name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span id="`+templ.EscapeString(slotID)+`" class="user">Signed in as <strong>`+
			templ.EscapeString(name)+`</strong></span>`)
		return err
	})
}

// EmptyUser clears the user slot.
func EmptyUser(slotID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span id="`+templ.EscapeString(slotID)+`"></span>`)
		return err
	})
}
