// Package cli implements the hl7inspect command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hl7inspect/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hl7inspect/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/hl7inspect/internal/core/ports/driving"
	"github.com/custodia-labs/hl7inspect/internal/core/services"
	"github.com/custodia-labs/hl7inspect/internal/normalisers/hl7v2"
)

var (
	inspectService driving.InspectService = services.NewInspectService(
		filesystem.NewReader(),
		hl7v2.NewExtractor(),
	)

	// newSettingsService builds settings from the config file at path.
	newSettingsService = func(path string) (driving.SettingsService, error) {
		store, err := file.NewConfigStore(path)
		if err != nil {
			return nil, err
		}
		return services.NewSettingsService(store), nil
	}
)

// Global flags.
var (
	verbose    bool
	configPath string
	colorMode  string
)

var rootCmd = &cobra.Command{
	Use:   "hl7inspect <file>",
	Short: "Inspect HL7v2 message files",
	Long: `Inspects HL7v2 message files without a conformance library.

By default prints each segment's field count and which fields are populated,
without showing any field content. --values, --field and --verify print
literal field values and may expose PHI.

Examples:
  hl7inspect message.hl7
  hl7inspect message.hl7 --values --segment PV1
  hl7inspect message.hl7 --field RXA.6
  hl7inspect message.hl7 --verify RXA.20`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInspect,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parsing details to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.hl7inspect/config.toml)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "highlight output: auto, always or never")
}

// Execute runs the root command and returns the process exit code.
// Failures are reported as a single line on stderr.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(userMessage(err))
		return 1
	}
	return 0
}
