package wizard

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// sanitizePaste cleans pasted content:
// - strips ANSI escape sequences
// - drops control characters other than \n and \t
// - normalizes CRLF to LF and trims trailing whitespace
func sanitizePaste(content string) string {
	content = ansi.Strip(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var b strings.Builder
	for _, r := range content {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r < 32 || r == 127:
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " \t\n")
}

// singleLine collapses runs of newlines and tabs into one space, for
// inputs that hold a single line.
func singleLine(content string) string {
	return strings.Join(strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == '\t'
	}), " ")
}
