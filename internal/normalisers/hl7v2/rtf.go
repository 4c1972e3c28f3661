package hl7v2

import (
	"regexp"
)

var (
	rtfControlWord = regexp.MustCompile(`\\([a-z]+)-?\d* ?`)
	rtfBrace       = regexp.MustCompile(`[{}]`)
)

// StripRTF removes RTF control words and braces from text. Paragraph and
// line breaks become newlines so segments stay on separate lines. Callers
// decide whether the text is RTF with domain.RawContent.IsRTF.
//
// This is a textual filter, not an RTF parser: escaped characters and
// embedded objects are not decoded.
func StripRTF(text string) string {
	text = rtfControlWord.ReplaceAllStringFunc(text, func(m string) string {
		switch rtfControlWord.FindStringSubmatch(m)[1] {
		case "par", "line":
			return "\n"
		default:
			return ""
		}
	})
	return rtfBrace.ReplaceAllString(text, "")
}
