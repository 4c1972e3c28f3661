package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hl7inspect/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/hl7inspect/internal/core/domain"
	"github.com/custodia-labs/hl7inspect/internal/logger"
	"github.com/custodia-labs/hl7inspect/internal/views"
)

// phiWarning is printed before views that show literal field content.
const phiWarning = "WARNING: output contains field values and may include PHI"

// View flags.
var (
	showValues    bool
	segmentFilter string
	fieldSpec     string
	verifySpec    string
)

func init() {
	rootCmd.Flags().BoolVar(&showValues, "values", false, "show field values (may contain PHI!)")
	rootCmd.Flags().StringVar(&segmentFilter, "segment", "", "with --values, only show this segment type (e.g., PV1)")
	rootCmd.Flags().StringVar(&fieldSpec, "field", "", "show one field with its components (e.g., RXA.6)")
	rootCmd.Flags().StringVar(&verifySpec, "verify", "", "verify a field position by pipe counting (e.g., RXA.20)")
}

// viewKind identifies the selected view. Earlier kinds win when several
// flags are given.
type viewKind int

const (
	viewVerify viewKind = iota
	viewField
	viewValues
	viewStructure
)

func selectView() viewKind {
	switch {
	case verifySpec != "":
		return viewVerify
	case fieldSpec != "":
		return viewField
	case showValues:
		return viewValues
	default:
		return viewStructure
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	logger.SetVerbose(settings.Verbose)
	logger.SetOutput(cmd.ErrOrStderr())
	defer logger.Sync()

	kind := selectView()
	var sel domain.FieldSelector
	switch kind {
	case viewVerify:
		if sel, err = domain.ParseFieldSelector(verifySpec); err != nil {
			return selectorError(verifySpec, "RXA.20", err)
		}
	case viewField:
		if sel, err = domain.ParseFieldSelector(fieldSpec); err != nil {
			return selectorError(fieldSpec, "RXA.6", err)
		}
	}

	logger.Section("Extraction")
	messages, err := inspectService.Load(cmd.Context(), path)
	if err != nil {
		return loadError(path, err)
	}

	out := cmd.OutOrStdout()
	style, themed := newStyle(settings.Color, out)

	if kind != viewStructure && settings.WarnPHI {
		warning := phiWarning
		if themed != nil {
			warning = themed.Warning.Render(warning)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), warning)
	}

	logger.Section("Render")
	fmt.Fprint(out, views.Header(len(messages)))

	switch kind {
	case viewVerify:
		fmt.Fprint(out, views.Verify(messages, sel, style))
	case viewField:
		fmt.Fprint(out, views.Field(messages, sel, style))
	case viewValues:
		fmt.Fprint(out, views.Values(messages, segmentFilter, style))
	default:
		fmt.Fprint(out, views.Structure(messages, style))
	}
	return nil
}

// resolveSettings loads the config file and applies flag overrides.
func resolveSettings(cmd *cobra.Command) (domain.Settings, error) {
	svc, err := newSettingsService(configPath)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	settings := svc.Get()

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		settings.Verbose = verbose
	}
	if flags.Changed("color") {
		mode := domain.ColorMode(colorMode)
		if !mode.IsValid() {
			return domain.Settings{}, fmt.Errorf("invalid --color %q: use auto, always or never", colorMode)
		}
		settings.Color = mode
	}
	return settings, nil
}

// newStyle returns view decorations for w. Both results are zero when
// highlighting is disabled.
func newStyle(mode domain.ColorMode, w io.Writer) (views.Style, *styles.Styles) {
	switch mode {
	case domain.ColorNever:
		return views.Style{}, nil
	case domain.ColorAuto:
		if !isTerminal(w) {
			return views.Style{}, nil
		}
	}

	s := styles.NewStyles(nil, w, mode == domain.ColorAlways)
	return views.Style{
		Heading: func(text string) string { return s.Heading.Render(text) },
		Target:  func(text string) string { return s.Target.Render(text) },
	}, s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
