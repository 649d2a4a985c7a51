package nemolaunch

import (
	"fmt"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/mihaicode/nemolaunch/internal/common"
)

// Info fetches the current record of a job and prints it as YAML.
func (a *App) Info(jobId string) error {
	if err := a.validateParams(); err != nil {
		return err
	}

	ctx, cancel := common.ContextWithDefaultTimeout()
	defer cancel()
	job, err := a.Params.BatchAPI.Info(ctx, jobId)
	if err != nil {
		return errors.Wrapf(err, "error getting job %s", jobId)
	}

	b, err := yaml.Marshal(job)
	if err != nil {
		return errors.Wrapf(err, "error marshalling job %s", jobId)
	}
	fmt.Fprint(a.Out, string(b))
	return nil
}
