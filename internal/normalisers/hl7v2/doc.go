// Package hl7v2 parses HL7v2 message text using the default delimiters.
//
// Parsing is purely structural: lines are split on '|', fields on '~' and
// '^'. Segment semantics, conformance and MSH-2 encoding negotiation are
// out of scope.
//
// # Components
//
//   - ParseLine: splits one segment line into identifier and fields
//   - Extractor: groups the segment lines of a file into messages
//   - StripRTF: best-effort removal of an RTF wrapper
//   - Decompose: splits a field into repetitions and components
package hl7v2
