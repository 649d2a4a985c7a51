package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihaicode/nemolaunch/pkg/api"
)

func TestToJobRequestWithCommandline(t *testing.T) {
	job := &SubmitFileJob{
		Name:        "ml-model.test",
		Instance:    "dgx1v.16g.1.norm",
		Image:       "nvidia/pytorch:21.08-py3",
		ResultPath:  "/result",
		Datasets:    []api.DatasetMount{{ID: "90228", MountPoint: "/data"}},
		Labels:      []string{"team=nlp"},
		Commandline: "sleep 60",
	}

	req, err := job.ToJobRequest()
	require.NoError(t, err)
	assert.Equal(t, "ml-model.test", req.Name)
	assert.Equal(t, "sleep 60", req.Commandline)
	assert.Equal(t, job.Datasets, req.Datasets)
	assert.Equal(t, job.Labels, req.Labels)
}

func TestToJobRequestWithSetup(t *testing.T) {
	job := &SubmitFileJob{
		Name:       "ml-model.test",
		Instance:   "dgx1v.32g.8.norm",
		Image:      "nvidia/pytorch:21.08-py3",
		ResultPath: "/result",
		Setup:      &SetupScript{WandbApiKey: "secret", Branch: "main"},
	}

	req, err := job.ToJobRequest()
	require.NoError(t, err)
	assert.Contains(t, req.Commandline, "wandb login secret")
	assert.Contains(t, req.Commandline, "git checkout main")
	assert.Contains(t, req.Commandline, "git clone "+DefaultRepo)
}

func TestToJobRequestSetupFollowsResultPath(t *testing.T) {
	job := &SubmitFileJob{
		Name:       "ml-model.test",
		Instance:   "dgx1v.32g.8.norm",
		Image:      "nvidia/pytorch:21.08-py3",
		ResultPath: "/out",
		Setup:      &SetupScript{WandbApiKey: "secret"},
	}

	req, err := job.ToJobRequest()
	require.NoError(t, err)
	assert.Contains(t, req.Commandline, "mkdir -p /out/checkpoints")

	job.Setup.ResultDir = "/scratch"
	req, err = job.ToJobRequest()
	require.NoError(t, err)
	assert.Contains(t, req.Commandline, "mkdir -p /scratch/checkpoints")
}

func TestToJobRequestExactlyOnePayload(t *testing.T) {
	both := &SubmitFileJob{Commandline: "sleep 60", Setup: &SetupScript{WandbApiKey: "secret"}}
	_, err := both.ToJobRequest()
	assert.Error(t, err)

	neither := &SubmitFileJob{}
	_, err = neither.ToJobRequest()
	assert.Error(t, err)
}

func TestToJobRequestSetupRequiresKey(t *testing.T) {
	job := &SubmitFileJob{Setup: &SetupScript{}}
	_, err := job.ToJobRequest()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WandbApiKey")
}
