// Package normalisers turns raw file content into domain types.
// Each subpackage understands one message format.
//
// The hl7v2 normaliser is wired into the inspect service at startup.
package normalisers
