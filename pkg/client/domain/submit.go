package domain

import (
	"github.com/pkg/errors"

	"github.com/mihaicode/nemolaunch/internal/common/launcherrors"
	"github.com/mihaicode/nemolaunch/pkg/api"
)

// JobSubmitFile is the structure of the YAML or JSON job files accepted by
// the submit and validate commands.
type JobSubmitFile struct {
	Jobs []*SubmitFileJob `json:"jobs"`
}

// SubmitFileJob is a single job entry in a submit file. Exactly one of
// Commandline and Setup must be set: Commandline submits a literal shell
// payload, Setup renders the standard workspace payload.
type SubmitFileJob struct {
	Name       string             `json:"name"`
	Instance   string             `json:"instance"`
	Image      string             `json:"image"`
	ResultPath string             `json:"resultPath"`
	Datasets   []api.DatasetMount `json:"datasets,omitempty"`
	Labels     []string           `json:"labels,omitempty"`

	Commandline string       `json:"commandline,omitempty"`
	Setup       *SetupScript `json:"setup,omitempty"`
}

// ToJobRequest resolves the job entry into the request handed to the
// submission CLI, rendering the setup payload if one is given.
func (j *SubmitFileJob) ToJobRequest() (*api.JobRequest, error) {
	commandline := j.Commandline
	switch {
	case j.Commandline != "" && j.Setup != nil:
		return nil, errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Commandline",
			Value:   j.Commandline,
			Message: "commandline and setup are mutually exclusive",
		})
	case j.Commandline == "" && j.Setup == nil:
		return nil, errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Commandline",
			Value:   j.Commandline,
			Message: "one of commandline and setup must be given",
		})
	case j.Setup != nil:
		setup := *j.Setup
		if setup.ResultDir == "" {
			// Keep the payload's result directory on the mounted result
			// volume unless the file says otherwise.
			setup.ResultDir = j.ResultPath
		}
		setup = setup.applyDefaults()
		if setup.WandbApiKey == "" {
			return nil, errors.WithStack(&launcherrors.ErrInvalidArgument{
				Name:    "WandbApiKey",
				Value:   setup.WandbApiKey,
				Message: "not provided",
			})
		}
		commandline = setup.Render()
	}

	return &api.JobRequest{
		Name:        j.Name,
		Instance:    j.Instance,
		Image:       j.Image,
		ResultPath:  j.ResultPath,
		Datasets:    j.Datasets,
		Labels:      j.Labels,
		Commandline: commandline,
	}, nil
}
