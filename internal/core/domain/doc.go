// Package domain defines the core entities for hl7inspect.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SegmentLine: One delimiter-split HL7v2 segment
//   - Message: A header segment and the segments that follow it
//   - FieldSelector: A SEG.N address of one field
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
