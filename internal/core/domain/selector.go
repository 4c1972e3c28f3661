package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldSelector addresses one field of a segment type, written SEG.N.
type FieldSelector struct {
	// Segment is the uppercased segment identifier.
	Segment string

	// Field is the 1-based field number. Numbers below 1 are accepted and
	// never match a present field.
	Field int
}

// ParseFieldSelector parses a SEG.N selector such as "RXA.20".
// The segment part is uppercased; the field part must be an integer.
func ParseFieldSelector(s string) (FieldSelector, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return FieldSelector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}

	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return FieldSelector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, s)
	}

	return FieldSelector{
		Segment: strings.ToUpper(strings.TrimSpace(parts[0])),
		Field:   n,
	}, nil
}

// String returns the selector in SEG.N form.
func (f FieldSelector) String() string {
	return fmt.Sprintf("%s.%d", f.Segment, f.Field)
}
