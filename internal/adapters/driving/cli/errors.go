package cli

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/hl7inspect/internal/core/domain"
)

// userError carries the one-line message shown for a failure.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

// selectorError reports a malformed SEG.N selector.
func selectorError(spec, example string, err error) error {
	return &userError{
		msg: fmt.Sprintf("Error: invalid field spec '%s'. Use format SEG.N (e.g., %s)", spec, example),
		err: err,
	}
}

// loadError maps inspect service failures to user messages.
func loadError(path string, err error) error {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return &userError{msg: "Error: file not found: " + path, err: err}
	case errors.Is(err, domain.ErrFileUnreadable):
		return &userError{msg: "Error: cannot read file: " + path, err: err}
	case errors.Is(err, domain.ErrNoMessages):
		return &userError{msg: "No HL7v2 messages found in file", err: err}
	default:
		return fmt.Errorf("failed to inspect %s: %w", path, err)
	}
}

// userMessage returns the line printed for err.
func userMessage(err error) string {
	var ue *userError
	if errors.As(err, &ue) {
		return ue.msg
	}
	return "Error: " + err.Error()
}
