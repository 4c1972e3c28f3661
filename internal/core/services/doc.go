// Package services implements the driving port interfaces.
// Services contain the core inspection flow and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no external dependencies beyond logging.
package services
