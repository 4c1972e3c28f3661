package domain

import "errors"

// Domain errors represent inspection failures.
// The CLI translates them into one-line user messages.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFileNotFound indicates the message file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileUnreadable indicates the message file exists but could not be read.
	ErrFileUnreadable = errors.New("file unreadable")

	// ErrInvalidSelector indicates a field selector that is not SEG.N.
	ErrInvalidSelector = errors.New("invalid field selector")

	// ErrNoMessages indicates the content held no recognisable HL7v2 segments.
	// This is a user-facing condition, not a parse failure.
	ErrNoMessages = errors.New("no HL7v2 messages found")
)
