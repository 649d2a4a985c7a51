package nemolaunch

import (
	"github.com/pkg/errors"
)

// Kill asks the service to terminate a job. The CLI's confirmation output
// streams to the app output.
func (a *App) Kill(jobId string) error {
	if err := a.validateParams(); err != nil {
		return err
	}
	if err := a.Params.BatchAPI.Kill(jobId, a.Out); err != nil {
		return errors.Wrapf(err, "error killing job %s", jobId)
	}
	return nil
}
