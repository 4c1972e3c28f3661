package views

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
	"github.com/custodia-labs/hl7inspect/internal/normalisers/hl7v2"
)

// Structure lists every segment with its field count and the positions of
// populated fields. Field content is described by shape only.
func Structure(messages []domain.Message, style Style) string {
	var b strings.Builder
	multi := len(messages) > 1

	for i, msg := range messages {
		if multi {
			writeln(&b, "%s", style.heading(messageBanner(i, len(messages))))
		}
		for _, seg := range msg.Segments {
			writeln(&b, "  %s (%d fields) populated: %s", seg.ID, seg.FieldCount(), populated(seg))
		}
		if multi {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func populated(seg domain.SegmentLine) string {
	var parts []string
	for n := 1; n <= seg.FieldCount(); n++ {
		if seg.IsEncodingChars(n) {
			continue
		}
		val := seg.Fields[n]
		if strings.TrimSpace(val) == "" {
			continue
		}
		parts = append(parts, strconv.Itoa(n)+hl7v2.Decompose(val).Describe())
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, ", ")
}

func messageBanner(i, total int) string {
	return "=== Message " + strconv.Itoa(i+1) + " of " + strconv.Itoa(total) + " ==="
}
