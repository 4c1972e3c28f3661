package hl7v2

import (
	"strings"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
	"github.com/custodia-labs/hl7inspect/internal/core/ports/driven"
	"github.com/custodia-labs/hl7inspect/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.MessageExtractor = (*Extractor)(nil)

// lineBreaks folds CRLF and bare CR segment terminators into LF.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Extractor groups segment lines into messages, one per MSH segment.
type Extractor struct{}

// NewExtractor creates a new HL7v2 message extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the messages in raw in file order. An RTF wrapper is
// stripped first.
func (e *Extractor) Extract(raw domain.RawContent) []domain.Message {
	content := raw.Text
	if raw.IsRTF() {
		content = StripRTF(content)
	}
	return groupMessages(content)
}

// ExtractMessages scans content for segment lines and groups them into
// messages. Every returned message starts with an MSH segment. Segments that
// appear before the first MSH belong to no message and are dropped.
func ExtractMessages(content string) []domain.Message {
	return NewExtractor().Extract(domain.RawContent{Text: content})
}

func groupMessages(content string) []domain.Message {

	var (
		messages []domain.Message
		current  []domain.SegmentLine
		orphans  int
		skipped  int
	)

	for _, line := range strings.Split(lineBreaks.Replace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !IsSegmentLine(line) {
			skipped++
			continue
		}

		seg := ParseLine(line)
		switch {
		case seg.IsHeader():
			if len(current) > 0 {
				messages = append(messages, domain.Message{Segments: current})
			}
			current = []domain.SegmentLine{seg}
		case len(current) == 0:
			orphans++
		default:
			current = append(current, seg)
		}
	}
	if len(current) > 0 {
		messages = append(messages, domain.Message{Segments: current})
	}

	if skipped > 0 {
		logger.Debug("skipped %d unrecognised line(s)", skipped)
	}
	if orphans > 0 {
		logger.Warn("dropped %d segment(s) before the first MSH", orphans)
	}
	return messages
}
