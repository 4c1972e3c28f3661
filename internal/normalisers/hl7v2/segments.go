package hl7v2

import "github.com/custodia-labs/hl7inspect/internal/core/domain"

// recognisedSegments is the closed set of segment identifiers retained by the
// extractor in addition to the MSH header.
var recognisedSegments = map[string]struct{}{
	"PID": {}, "PV1": {}, "PV2": {}, "PD1": {}, "NK1": {}, "ORC": {},
	"OBR": {}, "OBX": {}, "RXA": {}, "RXR": {}, "SPM": {}, "NTE": {},
	"AL1": {}, "DG1": {}, "GT1": {}, "IN1": {}, "IN2": {}, "IN3": {},
	"TQ1": {}, "TQ2": {}, "SFT": {}, "UAC": {}, "ARV": {}, "PRT": {},
	"EVN": {}, "MRG": {}, "ROL": {}, "FT1": {}, "ACC": {}, "UB1": {},
	"UB2": {}, "RXE": {}, "RXD": {}, "RXG": {}, "RXC": {},
}

// IsRecognised reports whether id is a known non-header segment identifier.
func IsRecognised(id string) bool {
	_, ok := recognisedSegments[id]
	return ok
}

// IsSegmentLine reports whether a trimmed line should be kept as a segment.
// The header code only counts when the line actually carries a delimiter.
func IsSegmentLine(line string) bool {
	id := SegmentID(line)
	if IsRecognised(id) {
		return true
	}
	return id == domain.HeaderSegment && containsDelimiter(line)
}
