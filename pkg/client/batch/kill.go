package batch

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mihaicode/nemolaunch/internal/common"
	"github.com/mihaicode/nemolaunch/internal/common/launcherrors"
	"github.com/mihaicode/nemolaunch/pkg/client"
)

type KillAPI func(jobId string, out io.Writer) error

// Kill asks the service to terminate a job, streaming the CLI's combined
// output to out.
func Kill(getConnectionDetails client.ConnectionDetails) KillAPI {
	return func(jobId string, out io.Writer) error {
		if jobId == "" {
			return errors.WithStack(&launcherrors.ErrInvalidArgument{
				Name:    "jobId",
				Value:   jobId,
				Message: "not provided",
			})
		}

		ctx, cancel := common.ContextWithDefaultTimeout()
		defer cancel()

		command := client.NewBatchCommand(getConnectionDetails(), "kill", KillArgs(jobId)...)
		return command.Run(ctx, out)
	}
}
