package hl7v2

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
)

// EmptyMarker is shown for fields that are present but blank.
const EmptyMarker = "(empty)"

// Kind classifies the structure of a field value.
type Kind int

const (
	// KindEmpty is a blank or whitespace-only value.
	KindEmpty Kind = iota

	// KindComponents is a value containing the component delimiter.
	KindComponents

	// KindRepetitions is a value containing only the repetition delimiter.
	KindRepetitions

	// KindScalar is a plain value.
	KindScalar
)

// Repetition is one '~'-separated occurrence of a field.
type Repetition struct {
	// Value is the raw repetition text.
	Value string

	// Components is nil unless Value contains the component delimiter.
	Components []string
}

// Field is a decomposed field value.
//
// The component delimiter is checked first: a value containing both '^' and
// '~' is treated as components. Repetitions are re-checked for components,
// components are never re-checked for repetitions.
type Field struct {
	Kind        Kind
	Value       string
	Components  []string
	Repetitions []Repetition
}

// Decompose classifies and splits a raw field value.
func Decompose(value string) Field {
	f := Field{Value: value}

	switch {
	case strings.TrimSpace(value) == "":
		f.Kind = KindEmpty
	case strings.Contains(value, domain.ComponentDelimiter):
		f.Kind = KindComponents
		f.Components = strings.Split(value, domain.ComponentDelimiter)
	case strings.Contains(value, domain.RepetitionDelimiter):
		f.Kind = KindRepetitions
		for _, r := range strings.Split(value, domain.RepetitionDelimiter) {
			rep := Repetition{Value: r}
			if strings.Contains(r, domain.ComponentDelimiter) {
				rep.Components = strings.Split(r, domain.ComponentDelimiter)
			}
			f.Repetitions = append(f.Repetitions, rep)
		}
	default:
		f.Kind = KindScalar
	}
	return f
}

// Describe returns a content-free description of the field, safe to show
// for records holding PHI.
func (f Field) Describe() string {
	switch f.Kind {
	case KindEmpty:
		return EmptyMarker
	case KindComponents:
		populated := 0
		for _, c := range f.Components {
			if c != "" {
				populated++
			}
		}
		return fmt.Sprintf("(%d/%d components)", populated, len(f.Components))
	case KindRepetitions:
		return fmt.Sprintf("(%d repeats)", len(f.Repetitions))
	default:
		return fmt.Sprintf("(len=%d)", utf8.RuneCountInString(f.Value))
	}
}

// FormatComponents renders components as "C1=a | C2=(empty) | ...".
func FormatComponents(components []string) string {
	parts := make([]string, len(components))
	for i, c := range components {
		if c == "" {
			c = EmptyMarker
		}
		parts[i] = fmt.Sprintf("C%d=%s", i+1, c)
	}
	return strings.Join(parts, " | ")
}

// OrEmpty returns v, or EmptyMarker when v is blank.
func OrEmpty(v string) string {
	if strings.TrimSpace(v) == "" {
		return EmptyMarker
	}
	return v
}
