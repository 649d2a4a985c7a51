// Package batch wraps the job operations of the vendor batch CLI behind
// narrow function-valued APIs, so commands can be wired against fakes in
// tests.
package batch

import (
	"github.com/mihaicode/nemolaunch/pkg/api"
)

// RunArgs renders a job request as arguments to `batch run`, in the flag
// order the CLI documents.
func RunArgs(req *api.JobRequest) []string {
	args := []string{
		"--instance", req.Instance,
		"--name", req.Name,
		"--image", req.Image,
		"--result", req.ResultPath,
	}
	for _, dataset := range req.Datasets {
		args = append(args, "--datasetid", dataset.String())
	}
	for _, label := range req.Labels {
		args = append(args, "--label", label)
	}
	return append(args, "--commandline", req.Commandline)
}

// InfoArgs renders arguments to `batch info`, asking for JSON output.
func InfoArgs(jobId string) []string {
	return []string{jobId, "--format_type", "json"}
}

// KillArgs renders arguments to `batch kill`.
func KillArgs(jobId string) []string {
	return []string{jobId}
}
