package nemolaunch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihaicode/nemolaunch/pkg/api"
)

const testJobFile = `
jobs:
  - name: ml-model.nemo-punct-workspace
    instance: dgx1v.32g.8.norm
    image: nvidia/pytorch:21.08-py3
    resultPath: /result
    datasets:
      - "90228:/data"
    setup:
      wandbApiKey: abc123
  - name: ml-model.smoke-test
    instance: dgx1v.16g.1.norm
    image: nvidia/pytorch:21.08-py3
    resultPath: /result
    commandline: nvidia-smi
`

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSubmitFromFile(t *testing.T) {
	app, buf := newTestApp()

	var submitted []*api.JobRequest
	ids := []int64{2839601, 2839602}
	app.Params.BatchAPI.Submit = func(req *api.JobRequest) (*api.Job, error) {
		submitted = append(submitted, req)
		return &api.Job{Id: ids[len(submitted)-1]}, nil
	}

	require.NoError(t, app.SubmitFromFile(writeJobFile(t, testJobFile), false))

	require.Len(t, submitted, 2)
	assert.Contains(t, submitted[0].Commandline, "wandb login abc123")
	assert.Equal(t, "nvidia-smi", submitted[1].Commandline)
	assert.Contains(t, buf.String(), "Submitted job id: 2839601")
	assert.Contains(t, buf.String(), "Submitted job id: 2839602")
}

func TestSubmitFromFileDryRun(t *testing.T) {
	app, buf := newTestApp()

	submitCalls := 0
	app.Params.BatchAPI.Submit = func(req *api.JobRequest) (*api.Job, error) {
		submitCalls++
		return &api.Job{}, nil
	}

	require.NoError(t, app.SubmitFromFile(writeJobFile(t, testJobFile), true))

	assert.Zero(t, submitCalls)
	assert.Contains(t, buf.String(), "ngc batch run --instance dgx1v.32g.8.norm")
	assert.Contains(t, buf.String(), "--instance dgx1v.16g.1.norm")
}

func TestSubmitFromFileEmpty(t *testing.T) {
	app, _ := newTestApp()
	err := app.SubmitFromFile(writeJobFile(t, "jobs: []\n"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no jobs")
}

func TestSubmitFromFileMissing(t *testing.T) {
	app, _ := newTestApp()
	err := app.SubmitFromFile(filepath.Join(t.TempDir(), "absent.yaml"), false)
	assert.Error(t, err)
}

func TestValidateSubmitFile(t *testing.T) {
	app, buf := newTestApp()

	require.NoError(t, app.ValidateSubmitFile(writeJobFile(t, testJobFile)))
	assert.Contains(t, buf.String(), "Valid:")
}

func TestValidateSubmitFileBadJob(t *testing.T) {
	app, _ := newTestApp()

	err := app.ValidateSubmitFile(writeJobFile(t, `
jobs:
  - name: ml-model.broken
    commandline: nvidia-smi
`))
	assert.Error(t, err)
}
