package nemolaunch

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mihaicode/nemolaunch/pkg/client"
	"github.com/mihaicode/nemolaunch/pkg/client/batch"
	"github.com/mihaicode/nemolaunch/pkg/client/domain"
	"github.com/mihaicode/nemolaunch/pkg/client/util"
	"github.com/mihaicode/nemolaunch/pkg/client/validation"
)

// SubmitFromFile submits every job in a YAML or JSON job file and prints
// the id the service assigned to each. With dryRun set it prints the
// command lines that would have run instead.
func (a *App) SubmitFromFile(path string, dryRun bool) error {
	if err := a.validateParams(); err != nil {
		return err
	}

	submitFile := &domain.JobSubmitFile{}
	if err := util.BindJsonOrYaml(path, submitFile); err != nil {
		return err
	}
	if len(submitFile.Jobs) == 0 {
		return errors.Errorf("file %s contains no jobs", path)
	}

	for i, fileJob := range submitFile.Jobs {
		req, err := fileJob.ToJobRequest()
		if err != nil {
			return errors.Wrapf(err, "job %d in file %s", i, path)
		}

		if dryRun {
			command := client.NewBatchCommand(a.Params.CliConnectionDetails, "run", batch.RunArgs(req)...)
			fmt.Fprintf(a.Out, "%s\n", command.String())
			continue
		}

		job, err := a.Params.BatchAPI.Submit(req)
		if err != nil {
			return errors.Wrapf(err, "error submitting job %d in file %s", i, path)
		}
		fmt.Fprintf(a.Out, "Submitted job id: %d\n", job.Id)
	}
	return nil
}

// ValidateSubmitFile parses and checks a job file without submitting
// anything.
func (a *App) ValidateSubmitFile(path string) error {
	if ok, err := validation.ValidateSubmitFile(path); !ok {
		return err
	}
	fmt.Fprintf(a.Out, "Valid: %s\n", path)
	return nil
}
