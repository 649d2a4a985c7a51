package nemolaunch

import (
	"crypto/rand"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mihaicode/nemolaunch/internal/common/launcherrors"
	"github.com/mihaicode/nemolaunch/pkg/client"
	"github.com/mihaicode/nemolaunch/pkg/client/batch"
)

type App struct {
	// Parameters passed to the CLI by the user.
	Params *Params
	// Out is used to write the output. Defaults to standard out,
	// but can be overridden in tests to make assertions on the application's output.
	Out io.Writer
	// Source of randomness. Tests can use a mocked random source in order to provide
	// deterministic testing behavior.
	Random io.Reader
}

// Params struct holds all user-customizable parameters.
// Using a single struct for all CLI commands ensures that all flags are distinct
// and that they can be provided either dynamically on a command line, or
// statically in a config file that's reused between command runs.
type Params struct {
	CliConnectionDetails *client.CliConnectionDetails
	JobDefaults          *client.JobDefaults
	BatchAPI             *BatchAPI
}

// BatchAPI bundles the batch service operations the commands run. Fields
// are function values so tests can swap in fakes.
type BatchAPI struct {
	Run    batch.RunAPI
	Submit batch.SubmitAPI
	Info   batch.InfoAPI
	Kill   batch.KillAPI
}

// New instantiates an App with default parameters, including standard output
// and cryptographically secure random source. The batch API talks to the
// vendor CLI configured by Params.CliConnectionDetails.
func New() *App {
	app := &App{
		Params: &Params{
			JobDefaults: &client.JobDefaults{},
			BatchAPI:    &BatchAPI{},
		},
		Out:    os.Stdout,
		Random: rand.Reader,
	}

	connectionDetails := func() *client.CliConnectionDetails {
		return app.Params.CliConnectionDetails
	}
	app.Params.BatchAPI.Run = batch.Run(connectionDetails)
	app.Params.BatchAPI.Submit = batch.Submit(connectionDetails)
	app.Params.BatchAPI.Info = batch.Info(connectionDetails)
	app.Params.BatchAPI.Kill = batch.Kill(connectionDetails)

	return app
}

// validateParams validates a.Params.
func (a *App) validateParams() error {
	if a.Params.CliConnectionDetails == nil {
		return errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "CliConnectionDetails",
			Value:   nil,
			Message: "not provided",
		})
	}
	if a.Params.CliConnectionDetails.NgcPath == "" {
		return errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "NgcPath",
			Value:   a.Params.CliConnectionDetails.NgcPath,
			Message: "not provided",
		})
	}
	return nil
}
