package driven

import (
	"context"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
)

// ContentReader loads the raw text of a message file.
type ContentReader interface {
	// Read returns the decoded content of the file at path.
	// Returns domain.ErrFileNotFound or domain.ErrFileUnreadable on failure.
	Read(ctx context.Context, path string) (domain.RawContent, error)
}
