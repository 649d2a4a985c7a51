package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihaicode/nemolaunch/internal/nemolaunch"
)

func submitCmd() *cobra.Command {
	return submitCmdWithApp(nemolaunch.New())
}

// Takes a caller-supplied app struct; useful for testing.
func submitCmdWithApp(a *nemolaunch.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit ./path/to/jobs.yaml",
		Short: "Submit jobs from file",
		Long: `Submit batch jobs from a file.

Example jobs.yaml:

jobs:
  - name: nemo-punct-workspace
    instance: dgx1v.32g.8.norm
    image: nvidia/pytorch:21.08-py3
    resultPath: /result
    datasets:
      - "90228:/data"
    setup:
      wandbApiKey: mykey
      branch: punctuate_capitalize_nmt
      keepAlive: 48h

A job carries either a setup block, which renders the workspace script into
the commandline, or a literal commandline of its own.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, err := cmd.Flags().GetBool("dry-run")
			if err != nil {
				return fmt.Errorf("error reading dry-run: %s", err)
			}
			return a.SubmitFromFile(args[0], dryRun)
		},
	}
	cmd.Flags().Bool("dry-run", false, "Print the full command lines instead of invoking the CLI.")
	return cmd
}

func validateCmd() *cobra.Command {
	return validateCmdWithApp(nemolaunch.New())
}

// Takes a caller-supplied app struct; useful for testing.
func validateCmdWithApp(a *nemolaunch.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate ./path/to/jobs.yaml",
		Short: "Validate a job file without submitting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ValidateSubmitFile(args[0])
		},
	}
	return cmd
}
