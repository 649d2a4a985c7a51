package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihaicode/nemolaunch/internal/nemolaunch"
	"github.com/mihaicode/nemolaunch/pkg/client"
)

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nemolaunch",
		Short: "nemolaunch stands up NeMo workspace jobs on the NGC batch service.",
		Long: `nemolaunch renders the NeMo workspace setup script and submits it as a batch
job through the vendor's ngc CLI, which must be installed and logged in.

Persistent config can be saved in a config file so it doesn't have to be specified every command.

Example structure:
ngcPath: ngc
ngcOrg: nvidian
ngcTeam: nlp
ngcAce: nv-us-west-2
jobDefaults:
  instance: dgx1v.32g.8.norm
  image: nvidia/pytorch:21.08-py3
  datasets:
    - "90228:/data"

The location of this file can be passed in using the --config argument.
If not provided, $HOME/.nemolaunch.yaml is used.`,
		SilenceUsage: true,
		// Errors are logged once by the main func.
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "config file (default is $HOME/.nemolaunch.yaml)")
	client.AddNgcCliCommandlineArgs(cmd)

	cmd.AddCommand(
		runCmd(),
		submitCmd(),
		validateCmd(),
		infoCmd(),
		watchCmd(),
		killCmd(),
		versionCmd(),
	)

	return cmd
}

func initParams(cmd *cobra.Command, params *nemolaunch.Params) error {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("error reading config: %s", err)
	}
	if err := client.LoadCommandlineArgsFromConfigFile(cfgFile); err != nil {
		return err
	}
	connectionDetails, err := client.ExtractCommandlineNgcCliDetails()
	if err != nil {
		return err
	}
	params.CliConnectionDetails = connectionDetails
	jobDefaults, err := client.ExtractCommandlineJobDefaults()
	if err != nil {
		return err
	}
	params.JobDefaults = jobDefaults
	return nil
}
