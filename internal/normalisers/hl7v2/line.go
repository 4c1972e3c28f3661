package hl7v2

import (
	"strings"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
)

// ParseLine splits a segment line on the field delimiter.
// Empty fields are preserved and no error is raised for malformed input.
func ParseLine(line string) domain.SegmentLine {
	fields := strings.Split(line, domain.FieldDelimiter)
	return domain.SegmentLine{
		ID:     strings.TrimSpace(fields[0]),
		Fields: fields,
	}
}

// SegmentID returns the trimmed token before the first field delimiter.
func SegmentID(line string) string {
	id, _, _ := strings.Cut(line, domain.FieldDelimiter)
	return strings.TrimSpace(id)
}

func containsDelimiter(line string) bool {
	return strings.Contains(line, domain.FieldDelimiter)
}
