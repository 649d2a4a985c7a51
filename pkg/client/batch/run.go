package batch

import (
	"context"
	"io"

	"github.com/mihaicode/nemolaunch/pkg/api"
	"github.com/mihaicode/nemolaunch/pkg/client"
)

type RunAPI func(ctx context.Context, req *api.JobRequest, out io.Writer) error

// Run submits a job through the CLI, streaming the CLI's combined output to
// out untouched. A non-zero CLI exit surfaces as an *exec.ExitError in the
// returned error chain.
func Run(getConnectionDetails client.ConnectionDetails) RunAPI {
	return func(ctx context.Context, req *api.JobRequest, out io.Writer) error {
		if err := req.Validate(); err != nil {
			return err
		}

		command := client.NewBatchCommand(getConnectionDetails(), "run", RunArgs(req)...)
		return command.Run(ctx, out)
	}
}
