package views

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
	"github.com/custodia-labs/hl7inspect/internal/normalisers/hl7v2"
)

// contextRadius is the number of fields shown either side of the target.
const contextRadius = 2

// Verify checks a field position by counting delimiters. A position past the
// end of a segment is reported as the number of extra pipes needed to reach
// it, and a position below 1 as not present; otherwise the target is shown
// with neighbouring fields for context.
func Verify(messages []domain.Message, sel domain.FieldSelector, style Style) string {
	var b strings.Builder
	multi := len(messages) > 1

	for i, msg := range messages {
		if multi {
			writeln(&b, "%s", style.heading(messageLabel(i)))
		}
		for _, seg := range msg.Segments {
			if seg.ID != sel.Segment {
				continue
			}
			writeVerify(&b, seg, sel.Field, style)
		}
	}
	return b.String()
}

// Shortfall returns how many more field delimiters seg needs before field n
// exists. It is zero when the field is present.
func Shortfall(seg domain.SegmentLine, n int) int {
	if n <= seg.FieldCount() {
		return 0
	}
	return n - seg.FieldCount()
}

func writeVerify(b *strings.Builder, seg domain.SegmentLine, n int, style Style) {
	total := seg.FieldCount()
	if n < 1 {
		writeln(b, "  %s: has %d fields, requested field %d is not present (fields start at 1)", seg.ID, total, n)
		return
	}
	if missing := Shortfall(seg, n); missing > 0 {
		writeln(b, "  %s: has %d fields, requested field %d is beyond end", seg.ID, total, n)
		writeln(b, "  Need %d more pipes to reach field %d", missing, n)
		return
	}

	writeln(b, "  %s (%d fields total), field %d = %s", seg.ID, total, n, displayValue(seg, n))
	writeln(b, "  Context:")

	start := max(1, n-contextRadius)
	end := min(total, n+contextRadius)
	for j := start; j <= end; j++ {
		line := "    Field " + strconv.Itoa(j) + ": " + displayValue(seg, j)
		if j == n {
			line = style.target(line + " <<<")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func displayValue(seg domain.SegmentLine, n int) string {
	if seg.IsEncodingChars(n) {
		return domain.EncodingCharsPlaceholder
	}
	val, _ := seg.Field(n)
	return hl7v2.OrEmpty(val)
}
