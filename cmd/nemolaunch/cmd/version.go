package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mihaicode/nemolaunch/internal/nemolaunch"
)

func versionCmd() *cobra.Command {
	return versionCmdWithApp(nemolaunch.New())
}

// Takes a caller-supplied app struct; useful for testing.
func versionCmdWithApp(a *nemolaunch.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print client version information",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Version()
		},
	}
	return cmd
}
