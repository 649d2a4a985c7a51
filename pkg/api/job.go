// Package api contains the types that make up the surface of the NGC batch
// service as exposed through its CLI: the job request assembled for
// `ngc batch run` and the subset of the job JSON returned by `ngc batch info`
// that this client consumes.
package api

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/mihaicode/nemolaunch/internal/common/launcherrors"
)

// JobRequest describes a single batch job to be submitted.
// Fields map 1:1 onto flags of the external submission CLI.
type JobRequest struct {
	// Job name, e.g., "ml-model.nemo-punct-workspace".
	Name string `json:"name"`
	// Instance type the job is scheduled onto, e.g., "dgx1v.32g.8.norm".
	Instance string `json:"instance"`
	// Container image reference, e.g., "nvidia/pytorch:21.08-py3".
	Image string `json:"image"`
	// Path inside the container where the service mounts the result volume.
	ResultPath string `json:"resultPath"`
	// Datasets mounted into the job.
	Datasets []DatasetMount `json:"datasets,omitempty"`
	// Optional labels attached to the job for bookkeeping.
	Labels []string `json:"labels,omitempty"`
	// Shell payload executed inside the container once it starts.
	Commandline string `json:"commandline"`
}

// Validate returns a multierror.Error wrapping one ErrInvalidArgument per
// missing or malformed field, or nil if the request is well-formed.
func (req *JobRequest) Validate() error {
	var result *multierror.Error
	if req.Name == "" {
		result = multierror.Append(result, errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Name",
			Value:   req.Name,
			Message: "not provided",
		}))
	}
	if req.Instance == "" {
		result = multierror.Append(result, errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Instance",
			Value:   req.Instance,
			Message: "not provided",
		}))
	}
	if req.Image == "" {
		result = multierror.Append(result, errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Image",
			Value:   req.Image,
			Message: "not provided",
		}))
	}
	if req.ResultPath == "" {
		result = multierror.Append(result, errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "ResultPath",
			Value:   req.ResultPath,
			Message: "not provided",
		}))
	}
	if req.Commandline == "" {
		result = multierror.Append(result, errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Commandline",
			Value:   req.Commandline,
			Message: "not provided",
		}))
	}
	for _, dataset := range req.Datasets {
		if err := dataset.validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// DatasetMount maps a dataset known to the batch service onto a path inside
// the job container. The CLI represents it as "<id>:<path>", e.g., "90228:/data".
type DatasetMount struct {
	ID         string
	MountPoint string
}

// ParseDatasetMount parses the "<id>:<path>" form used by the CLI and by
// job files.
func ParseDatasetMount(s string) (DatasetMount, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return DatasetMount{}, errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Datasets",
			Value:   s,
			Message: "expected <id>:<path>",
		})
	}
	return DatasetMount{ID: parts[0], MountPoint: parts[1]}, nil
}

func (m DatasetMount) String() string {
	return fmt.Sprintf("%s:%s", m.ID, m.MountPoint)
}

func (m DatasetMount) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *DatasetMount) UnmarshalText(text []byte) error {
	parsed, err := ParseDatasetMount(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m DatasetMount) validate() error {
	if m.ID == "" {
		return errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Datasets",
			Value:   m.String(),
			Message: "dataset id not provided",
		})
	}
	if !strings.HasPrefix(m.MountPoint, "/") {
		return errors.WithStack(&launcherrors.ErrInvalidArgument{
			Name:    "Datasets",
			Value:   m.String(),
			Message: "mount point must be an absolute path",
		})
	}
	return nil
}
