package domain

import "strings"

// Default HL7v2 delimiters. Encoding negotiation via MSH-2 is not supported.
const (
	FieldDelimiter      = "|"
	ComponentDelimiter  = "^"
	RepetitionDelimiter = "~"
)

// HeaderSegment is the segment identifier that opens every message.
const HeaderSegment = "MSH"

// EncodingCharsField is the MSH field holding the encoding characters.
// Its content is delimiter metadata, not message data.
const EncodingCharsField = 1

// EncodingCharsPlaceholder is displayed instead of the encoding characters.
const EncodingCharsPlaceholder = "(encoding chars)"

// SegmentLine is one retained line of an HL7v2 message.
type SegmentLine struct {
	// ID is the trimmed segment identifier (e.g. "PID").
	ID string

	// Fields holds the delimiter-separated tokens of the line.
	// Fields[0] is the identifier token as it appeared; fields are 1-indexed.
	Fields []string
}

// FieldCount returns the number of fields after the identifier.
func (s SegmentLine) FieldCount() int {
	if len(s.Fields) == 0 {
		return 0
	}
	return len(s.Fields) - 1
}

// Field returns field n and whether it is present on the line.
// A present field may still be empty.
func (s SegmentLine) Field(n int) (string, bool) {
	if n < 1 || n > s.FieldCount() {
		return "", false
	}
	return s.Fields[n], true
}

// IsHeader reports whether the line is a message header segment.
func (s SegmentLine) IsHeader() bool {
	return s.ID == HeaderSegment
}

// IsEncodingChars reports whether field n holds the header's encoding characters.
func (s SegmentLine) IsEncodingChars(n int) bool {
	return s.IsHeader() && n == EncodingCharsField
}

// Raw rebuilds the original line from its fields.
func (s SegmentLine) Raw() string {
	return strings.Join(s.Fields, FieldDelimiter)
}

// Message is an ordered group of segment lines starting with a header segment.
type Message struct {
	Segments []SegmentLine
}

// Header returns the message's header segment.
func (m Message) Header() SegmentLine {
	if len(m.Segments) == 0 {
		return SegmentLine{}
	}
	return m.Segments[0]
}
