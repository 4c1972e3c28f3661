package driven

import "github.com/custodia-labs/hl7inspect/internal/core/domain"

// MessageExtractor groups raw content into HL7v2 messages.
type MessageExtractor interface {
	// Extract returns the messages found in raw, in file order.
	// An empty result is not an error.
	Extract(raw domain.RawContent) []domain.Message
}
