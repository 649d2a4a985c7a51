package batch

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/mihaicode/nemolaunch/internal/common/launcherrors"
	"github.com/mihaicode/nemolaunch/pkg/api"
	"github.com/mihaicode/nemolaunch/pkg/client"
)

type InfoAPI func(ctx context.Context, jobId string) (*api.Job, error)

// Info fetches the current job record. The context is the caller's, so
// polling loops can cancel in-flight calls.
func Info(getConnectionDetails client.ConnectionDetails) InfoAPI {
	return func(ctx context.Context, jobId string) (*api.Job, error) {
		if jobId == "" {
			return nil, errors.WithStack(&launcherrors.ErrInvalidArgument{
				Name:    "jobId",
				Value:   jobId,
				Message: "not provided",
			})
		}

		command := client.NewBatchCommand(getConnectionDetails(), "info", InfoArgs(jobId)...)
		stdout, err := command.Output(ctx, os.Stderr)
		if err != nil {
			return nil, err
		}

		job := &api.Job{}
		if err := json.Unmarshal(stdout, job); err != nil {
			return nil, errors.Wrapf(err, "failed to parse job %s from CLI output", jobId)
		}
		return job, nil
	}
}
