package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mihaicode/nemolaunch/internal/nemolaunch"
)

func infoCmd() *cobra.Command {
	return infoCmdWithApp(nemolaunch.New())
}

// Takes a caller-supplied app struct; useful for testing.
func infoCmdWithApp(a *nemolaunch.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <job-id>",
		Short: "Print a job's current record as YAML",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Info(args[0])
		},
	}
	return cmd
}
