// Package render draws the board view model as plain terminal text.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"reportboard/client/internal/board"
	"reportboard/client/internal/controller"
)

// Sanitize makes server text safe to print: control characters, including the
// ESC that starts terminal sequences, and format characters such as bidi
// overrides become U+FFFD. Newlines and tabs are kept.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return unicode.ReplacementChar
		}
		return r
	}, s)
}

// Report writes one report block. Entering reports are marked with "*".
func Report(w io.Writer, v board.ReportView, now time.Time) error {
	marker := " "
	if v.Entering(now) {
		marker = "*"
	}
	if _, err := fmt.Fprintf(w, "%s #%s  %s  [%s]  %s\n",
		marker, Sanitize(v.ID.String()), Sanitize(v.Nickname), Sanitize(v.Room), v.LikeLabel); err != nil {
		return err
	}
	for _, line := range strings.Split(Sanitize(v.Content), "\n") {
		if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// Board writes every report, top first.
func Board(w io.Writer, items []board.ReportView, now time.Time) error {
	for _, v := range items {
		if err := Report(w, v, now); err != nil {
			return err
		}
	}
	return nil
}

// Status writes the user bar.
func Status(w io.Writer, s controller.UserStatus) error {
	line := Sanitize(s.Text)
	if s.LogoutVisible {
		line += "  (logout)"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// Alert writes a blocking message.
func Alert(w io.Writer, msg string) error {
	_, err := fmt.Fprintf(w, "! %s\n", Sanitize(msg))
	return err
}
