package validation

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/mihaicode/nemolaunch/pkg/client/domain"
	"github.com/mihaicode/nemolaunch/pkg/client/util"
)

// ValidateSubmitFile parses a job file and checks that every job entry in
// it would produce a well-formed request.
func ValidateSubmitFile(filePath string) (bool, error) {
	submitFile := &domain.JobSubmitFile{}
	if err := util.BindJsonOrYaml(filePath, submitFile); err != nil {
		return false, err
	}

	if len(submitFile.Jobs) <= 0 {
		return false, errors.New("Warning: You have provided no jobs to submit.")
	}

	var result *multierror.Error
	for i, job := range submitFile.Jobs {
		req, err := job.ToJobRequest()
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "job %d", i))
			continue
		}
		if err := req.Validate(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "job %d", i))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return false, err
	}
	return true, nil
}
