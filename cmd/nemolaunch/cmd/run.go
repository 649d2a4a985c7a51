package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/mihaicode/nemolaunch/internal/common"
	"github.com/mihaicode/nemolaunch/internal/nemolaunch"
	"github.com/mihaicode/nemolaunch/pkg/api"
	"github.com/mihaicode/nemolaunch/pkg/client"
	"github.com/mihaicode/nemolaunch/pkg/client/domain"
)

func runCmd() *cobra.Command {
	return runCmdWithApp(nemolaunch.New())
}

// Takes a caller-supplied app struct; useful for testing.
func runCmdWithApp(a *nemolaunch.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <wandb-api-key>",
		Short: "Submit the NeMo workspace job",
		Long: `Render the NeMo workspace setup script and submit it as a batch job.

The script clones NeMo, checks out the working branch, reinstalls the package,
logs into wandb with the given API key, pre-fetches the tokenizer, and then
sleeps so the workspace stays up for interactive use. The CLI's output is
streamed through and its exit code is mirrored on failure.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initParams(cmd, a.Params)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := runConfigFromFlags(cmd.Flags(), a.Params.JobDefaults)
			if err != nil {
				return err
			}
			config.Setup.WandbApiKey = args[0]

			ctx := common.ContextWithShutdown()
			return a.Run(ctx, config)
		},
	}
	cmd.Flags().String("name", nemolaunch.DefaultJobName, "Job name.")
	cmd.Flags().String("instance", nemolaunch.DefaultInstance, "Instance type to schedule the job on.")
	cmd.Flags().String("image", nemolaunch.DefaultImage, "Container image to run.")
	cmd.Flags().String("result", nemolaunch.DefaultResultPath, "Path the result dataset is mounted on.")
	cmd.Flags().StringSlice("datasetid", []string{nemolaunch.DefaultDataset}, "Dataset to mount, as <id>:<mount point>. Repeatable.")
	cmd.Flags().StringSlice("label", []string{}, "Label to attach to the job. Repeatable.")
	cmd.Flags().String("repo", domain.DefaultRepo, "Git repository cloned by the setup script.")
	cmd.Flags().String("branch", domain.DefaultBranch, "Branch checked out by the setup script.")
	cmd.Flags().String("workdir", domain.DefaultWorkDir, "Directory inside the clone the script changes into.")
	cmd.Flags().String("tokenizer", domain.DefaultTokenizerModel, "Tokenizer model pre-fetched into the container cache.")
	cmd.Flags().Int("threads", domain.DefaultOmpNumThreads, "Value exported as OMP_NUM_THREADS.")
	cmd.Flags().Duration("keep-alive", domain.DefaultKeepAlive, "How long the workspace sleeps before the job ends.")
	cmd.Flags().Bool("unique-name", false, "Append a random suffix to the job name so repeated runs don't collide.")
	cmd.Flags().Bool("trace-label", false, "Attach a generated nemolaunch-<id> label to the job.")
	cmd.Flags().Bool("dry-run", false, "Print the full command line instead of invoking the CLI.")
	return cmd
}

// runConfigFromFlags assembles the run config from the command flags,
// falling back to config-file jobDefaults for flags the user did not set.
func runConfigFromFlags(flags *pflag.FlagSet, defaults *client.JobDefaults) (*nemolaunch.RunConfig, error) {
	name, err := flags.GetString("name")
	if err != nil {
		return nil, fmt.Errorf("error reading name: %s", err)
	}
	instance, err := flags.GetString("instance")
	if err != nil {
		return nil, fmt.Errorf("error reading instance: %s", err)
	}
	image, err := flags.GetString("image")
	if err != nil {
		return nil, fmt.Errorf("error reading image: %s", err)
	}
	result, err := flags.GetString("result")
	if err != nil {
		return nil, fmt.Errorf("error reading result: %s", err)
	}
	datasetIds, err := flags.GetStringSlice("datasetid")
	if err != nil {
		return nil, fmt.Errorf("error reading datasetid: %s", err)
	}
	labels, err := flags.GetStringSlice("label")
	if err != nil {
		return nil, fmt.Errorf("error reading label: %s", err)
	}
	repo, err := flags.GetString("repo")
	if err != nil {
		return nil, fmt.Errorf("error reading repo: %s", err)
	}
	branch, err := flags.GetString("branch")
	if err != nil {
		return nil, fmt.Errorf("error reading branch: %s", err)
	}
	workDir, err := flags.GetString("workdir")
	if err != nil {
		return nil, fmt.Errorf("error reading workdir: %s", err)
	}
	tokenizer, err := flags.GetString("tokenizer")
	if err != nil {
		return nil, fmt.Errorf("error reading tokenizer: %s", err)
	}
	threads, err := flags.GetInt("threads")
	if err != nil {
		return nil, fmt.Errorf("error reading threads: %s", err)
	}
	keepAlive, err := flags.GetDuration("keep-alive")
	if err != nil {
		return nil, fmt.Errorf("error reading keep-alive: %s", err)
	}
	uniqueName, err := flags.GetBool("unique-name")
	if err != nil {
		return nil, fmt.Errorf("error reading unique-name: %s", err)
	}
	traceLabel, err := flags.GetBool("trace-label")
	if err != nil {
		return nil, fmt.Errorf("error reading trace-label: %s", err)
	}
	dryRun, err := flags.GetBool("dry-run")
	if err != nil {
		return nil, fmt.Errorf("error reading dry-run: %s", err)
	}

	datasets := make([]api.DatasetMount, 0, len(datasetIds))
	for _, s := range datasetIds {
		mount, err := api.ParseDatasetMount(s)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, mount)
	}

	// Config-file defaults apply only when the matching flag was left at
	// its built-in default.
	if defaults != nil {
		if !flags.Changed("instance") && defaults.Instance != "" {
			instance = defaults.Instance
		}
		if !flags.Changed("image") && defaults.Image != "" {
			image = defaults.Image
		}
		if !flags.Changed("datasetid") && len(defaults.Datasets) > 0 {
			datasets = defaults.Datasets
		}
	}

	setup := domain.SetupScript{
		Repo:           repo,
		Branch:         branch,
		WorkDir:        workDir,
		TokenizerModel: tokenizer,
		OmpNumThreads:  threads,
		KeepAlive:      metav1.Duration{Duration: keepAlive},
	}

	return &nemolaunch.RunConfig{
		Name:       name,
		Instance:   instance,
		Image:      image,
		ResultPath: result,
		Datasets:   datasets,
		Labels:     labels,
		Setup:      setup,
		UniqueName: uniqueName,
		TraceLabel: traceLabel,
		DryRun:     dryRun,
	}, nil
}
