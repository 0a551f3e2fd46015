package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Scan a project and print its files and dependency graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			result, err := c.components.App.Scan(cmd.Context(), dir)
			if err != nil {
				return err
			}
			if err := c.components.Progress.Close(); err != nil {
				c.components.Logger.Error(err)
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			if quiet {
				return nil
			}
			return c.components.App.Report(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().BoolP("quiet", "q", false, "Suppress the scan report")
	return cmd
}
