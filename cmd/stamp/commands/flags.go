package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/app"
)

// addTargetFlags registers the flags selecting the manifest and its targets.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("manifest", "m", "", "Path to stamp.yaml or its directory (default \"stamp.yaml\")")
	cmd.Flags().StringP("target", "t", "", "Target to generate for")
	cmd.Flags().BoolP("all", "a", false, "Use every target declared in the manifest")
	cmd.MarkFlagsMutuallyExclusive("target", "all")
}

func targetOptions(cmd *cobra.Command) app.TargetOptions {
	manifest, _ := cmd.Flags().GetString("manifest")
	target, _ := cmd.Flags().GetString("target")
	all, _ := cmd.Flags().GetBool("all")
	return app.TargetOptions{
		Manifest: manifest,
		Target:   target,
		All:      all,
	}
}
