package nemolaunch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/renstrom/shortuuid"

	"github.com/mihaicode/nemolaunch/internal/common/launcherrors"
	"github.com/mihaicode/nemolaunch/pkg/api"
	"github.com/mihaicode/nemolaunch/pkg/client"
	"github.com/mihaicode/nemolaunch/pkg/client/batch"
	"github.com/mihaicode/nemolaunch/pkg/client/domain"
)

// Defaults for the submission half of the run command. The payload half
// lives in pkg/client/domain.
const (
	DefaultInstance   = "dgx1v.32g.8.norm"
	DefaultJobName    = "ml-model.nemo-punct-workspace"
	DefaultImage      = "nvidia/pytorch:21.08-py3"
	DefaultResultPath = "/result"
	DefaultDataset    = "90228:/data"
)

// RunConfig holds everything the run command needs to assemble and submit
// the workspace job.
type RunConfig struct {
	Name       string
	Instance   string
	Image      string
	ResultPath string
	Datasets   []api.DatasetMount
	Labels     []string

	// Setup renders into the job's commandline. Its ResultDir always
	// follows ResultPath so the payload and the result mount agree.
	Setup domain.SetupScript

	// UniqueName appends a short random suffix to the job name, so repeated
	// runs don't collide.
	UniqueName bool
	// TraceLabel attaches a generated "nemolaunch-<id>" label, so jobs
	// submitted by this tool can be found again in the service.
	TraceLabel bool
	// DryRun prints the full command line instead of invoking the CLI.
	DryRun bool
}

func (config *RunConfig) Validate() error {
	if config.Setup.WandbApiKey == "" {
		return errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "WandbApiKey",
			Value:   config.Setup.WandbApiKey,
			Message: "not provided",
		})
	}
	if config.Name == "" {
		return errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Name",
			Value:   config.Name,
			Message: "not provided",
		})
	}
	if config.Instance == "" {
		return errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Instance",
			Value:   config.Instance,
			Message: "not provided",
		})
	}
	if config.Image == "" {
		return errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Image",
			Value:   config.Image,
			Message: "not provided",
		})
	}
	if config.ResultPath == "" {
		return errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "ResultPath",
			Value:   config.ResultPath,
			Message: "not provided",
		})
	}
	return nil
}

// Run submits the workspace job described by config, streaming the CLI's
// output to the app output and surfacing the CLI's exit code on failure.
// The wandb API key is validated before anything is invoked.
func (a *App) Run(ctx context.Context, config *RunConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := a.validateParams(); err != nil {
		return err
	}

	req, err := a.jobRequestFromConfig(config)
	if err != nil {
		return err
	}

	if config.DryRun {
		command := client.NewBatchCommand(a.Params.CliConnectionDetails, "run", batch.RunArgs(req)...)
		fmt.Fprintf(a.Out, "%s\n", command.String())
		return nil
	}

	return a.Params.BatchAPI.Run(ctx, req, a.Out)
}

func (a *App) jobRequestFromConfig(config *RunConfig) (*api.JobRequest, error) {
	name := config.Name
	if config.UniqueName {
		u, err := uuid.NewRandomFromReader(a.Random)
		if err != nil {
			return nil, errors.Wrap(err, "error generating job name suffix")
		}
		name = fmt.Sprintf("%s-%s", name, shortuuid.DefaultEncoder.Encode(u))
	}

	labels := config.Labels
	if config.TraceLabel {
		u, err := uuid.NewRandomFromReader(a.Random)
		if err != nil {
			return nil, errors.Wrap(err, "error generating trace label")
		}
		labels = append(labels, fmt.Sprintf("nemolaunch-%s", shortuuid.DefaultEncoder.Encode(u)))
	}

	setup := config.Setup
	setup.ResultDir = config.ResultPath

	return &api.JobRequest{
		Name:        name,
		Instance:    config.Instance,
		Image:       config.Image,
		ResultPath:  config.ResultPath,
		Datasets:    config.Datasets,
		Labels:      labels,
		Commandline: setup.Render(),
	}, nil
}
