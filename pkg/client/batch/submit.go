package batch

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/mihaicode/nemolaunch/internal/common"
	"github.com/mihaicode/nemolaunch/pkg/api"
	"github.com/mihaicode/nemolaunch/pkg/client"
)

type SubmitAPI func(req *api.JobRequest) (*api.Job, error)

// Submit submits a job with JSON output requested and returns the job
// record the service created. The CLI's stderr passes through untouched.
func Submit(getConnectionDetails client.ConnectionDetails) SubmitAPI {
	return func(req *api.JobRequest) (*api.Job, error) {
		if err := req.Validate(); err != nil {
			return nil, err
		}

		ctx, cancel := common.ContextWithDefaultTimeout()
		defer cancel()

		args := append(RunArgs(req), "--format_type", "json")
		command := client.NewBatchCommand(getConnectionDetails(), "run", args...)
		stdout, err := command.Output(ctx, os.Stderr)
		if err != nil {
			return nil, err
		}

		job := &api.Job{}
		if err := json.Unmarshal(stdout, job); err != nil {
			return nil, errors.Wrap(err, "failed to parse submitted job from CLI output")
		}
		return job, nil
	}
}
