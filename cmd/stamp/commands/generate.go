package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the version packages",
		Long: "Generate resolves the manifest, emits the array and map packages, checks that\n" +
			"they agree and publishes both. Up to date targets are skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := targetOptions(cmd)
			opts.Force, _ = cmd.Flags().GetBool("force")
			return c.app.Generate(cmd.Context(), opts)
		},
	}
	addTargetFlags(cmd)
	cmd.Flags().BoolP("force", "f", false, "Regenerate even when outputs are up to date")
	return cmd
}

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the published packages against each other and the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Verify(cmd.Context(), targetOptions(cmd))
		},
	}
	addTargetFlags(cmd)
	return cmd
}

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Show(cmd.Context(), cmd.OutOrStdout(), targetOptions(cmd))
		},
	}
	addTargetFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the manifest or lockfile changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), targetOptions(cmd))
		},
	}
	addTargetFlags(cmd)
	return cmd
}
