package domain

import "strings"

// RTFPrefix marks content wrapped in a rich-text container.
const RTFPrefix = `{\rtf`

// RawContent is the unparsed text of a message file.
// It is the reader's output before extraction.
type RawContent struct {
	// Path is the file the content was read from.
	Path string

	// Text is the decoded file content.
	Text string
}

// IsRTF reports whether the content is wrapped in RTF.
func (r RawContent) IsRTF() bool {
	return strings.HasPrefix(r.Text, RTFPrefix)
}
