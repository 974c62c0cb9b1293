package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/glhost/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- BINARY [args...]",
		Short: "Run a binary with the host driver cache injected",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			driverDir, _ := cmd.Flags().GetString("driver-directory")

			return c.app.Run(cmd.Context(), args[0], args[1:], app.Options{
				DriverDir: driverDir,
			})
		},
	}
	cmd.Flags().StringP("driver-directory", "d", "", "Scan only this driver directory instead of the loader search path")
	// Everything after the wrapped binary belongs to the wrapped binary.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
