package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/extsurvey/internal/branding"
	"github.com/agentx-labs/extsurvey/internal/catalog"
	"github.com/agentx-labs/extsurvey/internal/config"
	"github.com/agentx-labs/extsurvey/internal/registry"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	workDirFlag string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&workDirFlag, "work-dir", "", "Extensions repository working tree (default from config, \"work\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` surveys every extension listed in an extensions registry and reports
which ones match a question: deprecated theme properties, legacy manifests,
duplicated grammar sources and more.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Skip the freshness check for commands that manage their own state.
		name := cmd.Name()
		if name == "update-repo" || name == "version" || name == "config" || cmd.Parent() == configCmd {
			return
		}

		dir := workDir()
		if _, err := os.Stat(dir); err == nil && catalog.IsStale(dir, catalog.DefaultMaxAge) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Extensions repository is more than 7 days old. Run '%s update-repo'.\n", branding.CLIName())
		}
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// workDir returns the working tree path, with --work-dir taking precedence
// over the config file and environment.
func workDir() string {
	if workDirFlag != "" {
		return workDirFlag
	}
	return config.Get(config.KeyWorkDir)
}

// newLogger builds the logger for one command invocation. Logs always go to
// stderr so they never interleave with a report on stdout.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(config.Get(config.KeyLogLevel))
	if err != nil {
		level = logrus.WarnLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadIndex reads the registry index from the working tree.
func loadIndex() (*registry.Index, error) {
	dir := workDir()
	idx, err := registry.Load(dir, config.Get(config.KeyRegistryFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w (run '%s update-repo' first)", err, branding.CLIName())
		}
		return nil, err
	}
	return idx, nil
}
