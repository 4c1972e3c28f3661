// Package views renders the inspection views over extracted HL7v2 messages.
//
// Each view is a pure function from messages (plus its selector) to text.
// Structure never prints field content; Values, Field and Verify print
// literal values and may expose PHI.
package views
