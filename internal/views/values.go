package views

import (
	"strings"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
	"github.com/custodia-labs/hl7inspect/internal/normalisers/hl7v2"
)

// Values prints the literal content of every populated field, split into
// repetitions and components. When segment is non-empty only segments with
// that identifier are shown. Empty fields are skipped.
func Values(messages []domain.Message, segment string, style Style) string {
	var b strings.Builder
	multi := len(messages) > 1
	segment = strings.ToUpper(strings.TrimSpace(segment))

	for i, msg := range messages {
		if multi {
			writeln(&b, "%s", style.heading(messageBanner(i, len(messages))))
		}
		for _, seg := range msg.Segments {
			if segment != "" && seg.ID != segment {
				continue
			}
			writeSegmentValues(&b, seg)
		}
		if multi {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func writeSegmentValues(b *strings.Builder, seg domain.SegmentLine) {
	writeln(b, "  %s:", seg.ID)

	for n := 1; n <= seg.FieldCount(); n++ {
		if seg.IsEncodingChars(n) {
			writeln(b, "    Field %d: %s", n, domain.EncodingCharsPlaceholder)
			continue
		}

		f := hl7v2.Decompose(seg.Fields[n])
		switch f.Kind {
		case hl7v2.KindEmpty:
		case hl7v2.KindComponents:
			writeln(b, "    Field %d: %s", n, hl7v2.FormatComponents(f.Components))
		case hl7v2.KindRepetitions:
			for r, rep := range f.Repetitions {
				if rep.Components != nil {
					writeln(b, "    Field %d[%d]: %s", n, r+1, hl7v2.FormatComponents(rep.Components))
				} else {
					writeln(b, "    Field %d[%d]: %s", n, r+1, rep.Value)
				}
			}
		default:
			writeln(b, "    Field %d: %s", n, f.Value)
		}
	}
}
