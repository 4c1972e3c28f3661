package views

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
	"github.com/custodia-labs/hl7inspect/internal/normalisers/hl7v2"
)

// Field prints one field of every matching segment, followed by its
// components or repetitions with 1-based sub-indexes.
func Field(messages []domain.Message, sel domain.FieldSelector, style Style) string {
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
			writeField(&b, seg, sel.Field)
		}
	}
	return b.String()
}

func writeField(b *strings.Builder, seg domain.SegmentLine, n int) {
	val, ok := seg.Field(n)
	switch {
	case !ok:
		writeln(b, "  %s-%d: (not present, only %d fields)", seg.ID, n, seg.FieldCount())
		return
	case seg.IsEncodingChars(n):
		writeln(b, "  %s-%d: %s", seg.ID, n, domain.EncodingCharsPlaceholder)
		return
	}

	f := hl7v2.Decompose(val)
	switch f.Kind {
	case hl7v2.KindEmpty:
		writeln(b, "  %s-%d: %s", seg.ID, n, hl7v2.EmptyMarker)
	case hl7v2.KindComponents:
		writeln(b, "  %s-%d: %s", seg.ID, n, val)
		for k, c := range f.Components {
			if c == "" {
				c = hl7v2.EmptyMarker
			}
			writeln(b, "    .%d: %s", k+1, c)
		}
	case hl7v2.KindRepetitions:
		writeln(b, "  %s-%d: %s (%d repeats)", seg.ID, n, val, len(f.Repetitions))
		for r, rep := range f.Repetitions {
			v := rep.Value
			if v == "" {
				v = hl7v2.EmptyMarker
			}
			writeln(b, "    [%d]: %s", r+1, v)
		}
	default:
		writeln(b, "  %s-%d: %s", seg.ID, n, val)
	}
}

func messageLabel(i int) string {
	return "--- Message " + strconv.Itoa(i+1) + " ---"
}
