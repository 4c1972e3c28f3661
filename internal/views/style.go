package views

import (
	"fmt"
	"strings"
)

// Style decorates selected lines of view output. The zero value leaves
// output as plain text.
type Style struct {
	// Heading decorates message separator lines.
	Heading func(string) string

	// Target decorates the requested field in the Verify context.
	Target func(string) string
}

func (s Style) heading(text string) string {
	if s.Heading == nil {
		return text
	}
	return s.Heading(text)
}

func (s Style) target(text string) string {
	if s.Target == nil {
		return text
	}
	return s.Target(text)
}

// Header returns the message count line printed before every view.
func Header(count int) string {
	return fmt.Sprintf("Found %d message(s)\n\n", count)
}

// writeln appends a formatted line to b.
func writeln(b *strings.Builder, format string, args ...any) {
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}
