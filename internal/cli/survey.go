package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agentx-labs/extsurvey/internal/predicate"
	"github.com/agentx-labs/extsurvey/internal/report"
	"github.com/agentx-labs/extsurvey/internal/survey"
)

var (
	surveyFormat      string
	surveyExtensions  []string
	surveyReplacement string
)

func init() {
	formats := make([]string, len(report.Formats))
	for i, f := range report.Formats {
		formats[i] = string(f)
	}
	surveyCmd.PersistentFlags().StringVarP(&surveyFormat, "format", "f", string(report.FormatMarkdown),
		"Report format ("+strings.Join(formats, ", ")+")")
	surveyCmd.PersistentFlags().StringSliceVarP(&surveyExtensions, "extension", "e", nil,
		"Only survey these extension ids (repeatable)")

	themePropertyCmd.Flags().StringVar(&surveyReplacement, "replacement", "",
		"Property to recommend in place of the deprecated one")

	surveyCmd.AddCommand(themePropertyCmd)
	surveyCmd.AddCommand(themeListingCmd)
	surveyCmd.AddCommand(extensionJSONCmd)
	surveyCmd.AddCommand(grammarsCmd)
	surveyCmd.AddCommand(versionDriftCmd)
	rootCmd.AddCommand(surveyCmd)
}

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Run a survey over every extension in the registry",
	Long: `Run a survey over every extension listed in the registry index and print
a report of the extensions that match.

The report goes to stdout; logs and the run summary go to stderr.`,
}

var themePropertyCmd = &cobra.Command{
	Use:   "theme-property <segment>...",
	Short: "Find themes using a style property",
	Long: `Find themes whose style uses the given property.

A single argument is matched as a literal key, dots included:

  extsurvey survey theme-property scrollbar_thumb.background

Several arguments form a nested path, innermost key first. This matches
style.scrollbar.thumb.background:

  extsurvey survey theme-property background thumb scrollbar`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := predicate.FromSegments(args)
		if err != nil {
			return err
		}
		return runSurvey(cmd, survey.NewThemeProperty(p, surveyReplacement))
	},
}

var themeListingCmd = &cobra.Command{
	Use:   "theme-listing",
	Short: "List every theme of every extension",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurvey(cmd, survey.ThemeListing{})
	},
}

var extensionJSONCmd = &cobra.Command{
	Use:   "extension-json",
	Short: "Find extensions still using the legacy extension.json manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurvey(cmd, survey.ExtensionJSON{})
	},
}

var grammarsCmd = &cobra.Command{
	Use:     "grammars",
	Aliases: []string{"tree-sitter-grammars"},
	Short:   "List grammars and the sources shipped by more than one extension",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurvey(cmd, survey.NewGrammars())
	},
}

var versionDriftCmd = &cobra.Command{
	Use:   "version-drift",
	Short: "Find extensions whose manifest version differs from the registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSurvey(cmd, survey.VersionDrift{})
	},
}

// runSurvey loads the registry, runs s and writes the report. Nothing is
// written to stdout unless the whole run succeeds.
func runSurvey(cmd *cobra.Command, s survey.Survey) error {
	format, err := report.ParseFormat(surveyFormat)
	if err != nil {
		return err
	}

	idx, err := loadIndex()
	if err != nil {
		return err
	}
	if len(surveyExtensions) > 0 {
		if idx, err = idx.Select(surveyExtensions); err != nil {
			return err
		}
	}

	logger := newLogger(cmd)
	logger.WithField("survey", s.Name()).Debugf("surveying %d extensions", idx.Len())

	r, err := survey.New(workDir(), idx, logger).Run(s)
	if err != nil {
		return err
	}

	if err := r.Write(cmd.OutOrStdout(), format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	printSummary(cmd.ErrOrStderr(), r.Summary)
	return nil
}

var (
	matchedColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	skippedColor = color.New(color.Faint)
)

// printSummary writes the one-line run summary, e.g.
// "Surveyed 1,204 extensions: 7 matched, 3 errors, 120 skipped".
func printSummary(w io.Writer, s report.Summary) {
	p := message.NewPrinter(language.English)

	errCount := s.Errors
	errText := p.Sprintf("%d errors", errCount)
	if errCount > 0 {
		errText = errorColor.Sprint(errText)
	}

	fmt.Fprintf(w, "%s %s, %s, %s\n",
		p.Sprintf("Surveyed %d extensions:", s.Surveyed),
		matchedColor.Sprint(p.Sprintf("%d matched", s.Matched)),
		errText,
		skippedColor.Sprint(p.Sprintf("%d skipped", s.Skipped)),
	)
}
