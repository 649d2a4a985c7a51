package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihaicode/nemolaunch/internal/common"
	"github.com/mihaicode/nemolaunch/internal/nemolaunch"
)

func watchCmd() *cobra.Command {
	return watchCmdWithApp(nemolaunch.New())
}

// Takes a caller-supplied app struct; useful for testing.
func watchCmdWithApp(a *nemolaunch.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <job-id>",
		Short: "Watch a job until it finishes",
		Long: `Poll the service for the job's status and print every transition.
Exits non-zero if the job ends in a failed state.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pollInterval, err := cmd.Flags().GetDuration("poll-interval")
			if err != nil {
				return fmt.Errorf("error reading poll-interval: %s", err)
			}

			ctx := common.ContextWithShutdown()
			return a.Watch(ctx, args[0], pollInterval)
		},
	}
	cmd.Flags().Duration("poll-interval", nemolaunch.DefaultPollInterval, "Time between status polls.")
	return cmd
}
