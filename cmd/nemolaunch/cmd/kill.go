package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mihaicode/nemolaunch/internal/nemolaunch"
)

func killCmd() *cobra.Command {
	return killCmdWithApp(nemolaunch.New())
}

// Takes a caller-supplied app struct; useful for testing.
func killCmdWithApp(a *nemolaunch.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kill <job-id>",
		Short: "Kill a running job",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Kill(args[0])
		},
	}
	return cmd
}
