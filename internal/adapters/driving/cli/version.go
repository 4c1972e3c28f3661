package cli

// version is set at build time via -ldflags.
var version = "dev"

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("hl7inspect version {{.Version}}\n")
}
