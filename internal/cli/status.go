package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/extsurvey/internal/extension"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the checkout status of every registry entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := loadIndex()
		if err != nil {
			return err
		}

		statuses, err := extension.List(workDir(), idx)
		if err != nil {
			newLogger(cmd).WithError(err).Warn("submodule status unavailable")
		}

		if len(statuses) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No extensions in the registry.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tVERSION\tSUBMODULE\tPATH\tSTATUS")
		for _, s := range statuses {
			path := s.Path
			if path == "" {
				path = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Version, s.Submodule, path, s.Status)
		}
		return w.Flush()
	},
}
