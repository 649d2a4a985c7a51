package nemolaunch

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/mihaicode/nemolaunch/pkg/api"
	"github.com/mihaicode/nemolaunch/pkg/client"
	"github.com/mihaicode/nemolaunch/pkg/client/domain"
)

// DefaultPollInterval is how often watch asks the service for job state.
const DefaultPollInterval = 15 * time.Second

// Watch polls a job until it reaches a terminal state, printing status
// transitions as they happen. A job that ends in anything other than
// success yields an error, so the command exits non-zero.
func (a *App) Watch(ctx context.Context, jobId string, pollInterval time.Duration) error {
	if err := a.validateParams(); err != nil {
		return err
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	fmt.Fprintf(a.Out, "Watching job %s\n", jobId)
	state, err := client.WatchJob(ctx, client.JobPoller(a.Params.BatchAPI.Info), jobId, pollInterval,
		func(state *domain.WatchContext, job *api.Job) bool {
			fmt.Fprintf(a.Out, "job %s: %s\n", jobId, state.CurrentStatus())
			return false
		})
	if err != nil {
		return err
	}

	if !state.Finished() {
		fmt.Fprintf(a.Out, "Stopped watching job %s\n", jobId)
		return nil
	}

	fmt.Fprintf(a.Out, "Job %s finished: %s\n", jobId, state.Summary())
	if !state.Succeeded() {
		return errors.Errorf("job %s ended in state %s", jobId, state.CurrentStatus())
	}
	return nil
}
