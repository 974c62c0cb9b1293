package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/glhost/internal/app"
)

func (c *CLI) newPrintEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print-env",
		Short: "Prepare the cache and print the resulting environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			driverDir, _ := cmd.Flags().GetString("driver-directory")

			return c.app.PrintEnv(cmd.Context(), cmd.OutOrStdout(), app.Options{
				DriverDir: driverDir,
			})
		},
	}
	cmd.Flags().StringP("driver-directory", "d", "", "Scan only this driver directory instead of the loader search path")
	return cmd
}
