package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mihaicode/nemolaunch/internal/common/config"
	"github.com/mihaicode/nemolaunch/pkg/api"
)

func AddNgcCliCommandlineArgs(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("ngcPath", "ngc", "path to the vendor batch CLI executable")
	viper.BindPFlag("ngcPath", rootCmd.PersistentFlags().Lookup("ngcPath"))
	rootCmd.PersistentFlags().String("ngcOrg", "", "org context passed to the CLI")
	viper.BindPFlag("ngcOrg", rootCmd.PersistentFlags().Lookup("ngcOrg"))
	rootCmd.PersistentFlags().String("ngcTeam", "", "team context passed to the CLI")
	viper.BindPFlag("ngcTeam", rootCmd.PersistentFlags().Lookup("ngcTeam"))
	rootCmd.PersistentFlags().String("ngcAce", "", "ACE context passed to the CLI")
	viper.BindPFlag("ngcAce", rootCmd.PersistentFlags().Lookup("ngcAce"))
}

func LoadCommandlineArgsFromConfigFile(cfgFile string) error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("[LoadCommandlineArgsFromConfigFile] error finding executable path: %s", err)
	} else {
		exeDir := filepath.Dir(exePath)
		viper.SetConfigFile(exeDir + "/nemolaunch-defaults.yaml")
		err := viper.ReadInConfig()
		if err != nil {
			switch err.(type) {
			case viper.ConfigFileNotFoundError:
			case *os.PathError:
				// No default config is fine
			default:
				return fmt.Errorf("[LoadCommandlineArgsFromConfigFile] error reading config file %s: %s", viper.ConfigFileUsed(), err)
			}
		}
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("[LoadCommandlineArgsFromConfigFile] error getting user home directory: %s", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".nemolaunch")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err = viper.MergeInConfig()

	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			// This only occurs when looking for the default .nemolaunch file and it is not present
			// This is not an error as users don't have to specify it, so do nothing
		default:
			return fmt.Errorf("[LoadCommandlineArgsFromConfigFile] error reading config file %s: %s", viper.ConfigFileUsed(), err)
		}
	}
	return nil
}

func ExtractCommandlineNgcCliDetails() (*CliConnectionDetails, error) {
	details := &CliConnectionDetails{}
	if err := viper.Unmarshal(details); err != nil {
		return nil, fmt.Errorf("[ExtractCommandlineNgcCliDetails] error decoding config: %s", err)
	}
	if err := config.Validate(details); err != nil {
		config.LogValidationErrors(err)
		return nil, fmt.Errorf("[ExtractCommandlineNgcCliDetails] invalid config: %s", err)
	}
	return details, nil
}

// JobDefaults are optional job request defaults picked up from the config
// file under the jobDefaults key, applied when the matching run flags are
// not set.
type JobDefaults struct {
	Instance string
	Image    string
	Datasets []api.DatasetMount
}

func ExtractCommandlineJobDefaults() (*JobDefaults, error) {
	defaults := &JobDefaults{}
	if err := viper.UnmarshalKey("jobDefaults", defaults, config.CustomHooks...); err != nil {
		return nil, fmt.Errorf("[ExtractCommandlineJobDefaults] error decoding jobDefaults: %s", err)
	}
	return defaults, nil
}
