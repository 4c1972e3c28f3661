// Package filesystem reads HL7v2 message files from local disk.
package filesystem
