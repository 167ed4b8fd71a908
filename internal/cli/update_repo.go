package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/extsurvey/internal/catalog"
	"github.com/agentx-labs/extsurvey/internal/config"
)

func init() {
	rootCmd.AddCommand(updateRepoCmd)
}

var updateRepoCmd = &cobra.Command{
	Use:   "update-repo",
	Short: "Clone or update the extensions repository",
	Long: `Clone the extensions repository with all of its submodules into the work
directory, or pull the latest changes when it is already checked out.

The repository URL comes from the repository_url config key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := workDir()
		repoURL := config.Get(config.KeyRepositoryURL)

		newLogger(cmd).WithField("path", dir).Debugf("updating from %s", repoURL)
		fmt.Fprintf(cmd.OutOrStdout(), "Updating extensions repository in %s...\n", dir)

		if err := catalog.Update(dir, repoURL); err != nil {
			return fmt.Errorf("updating extensions repository: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Extensions repository is up to date.")
		return nil
	},
}
