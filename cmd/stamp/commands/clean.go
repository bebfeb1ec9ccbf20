package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the build info store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputs, _ := cmd.Flags().GetBool("outputs")
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				TargetOptions: targetOptions(cmd),
				Outputs:       outputs,
			})
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().BoolP("outputs", "o", false, "Also remove the generated packages")
	return cmd
}
