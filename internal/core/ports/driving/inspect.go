package driving

import (
	"context"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
)

// InspectService loads HL7v2 messages for the inspection views.
type InspectService interface {
	// Load reads the file at path and extracts its messages.
	// Returns domain.ErrNoMessages when nothing recognisable was found.
	Load(ctx context.Context, path string) ([]domain.Message, error)
}
