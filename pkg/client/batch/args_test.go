package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mihaicode/nemolaunch/pkg/api"
)

func TestRunArgs(t *testing.T) {
	req := &api.JobRequest{
		Name:        "ml-model.nemo-punct-workspace",
		Instance:    "dgx1v.32g.8.norm",
		Image:       "nvidia/pytorch:21.08-py3",
		ResultPath:  "/result",
		Datasets:    []api.DatasetMount{{ID: "90228", MountPoint: "/data"}},
		Labels:      []string{"team=nlp"},
		Commandline: "set -e -x\nsleep 172800\nset +e +x",
	}

	assert.Equal(t, []string{
		"--instance", "dgx1v.32g.8.norm",
		"--name", "ml-model.nemo-punct-workspace",
		"--image", "nvidia/pytorch:21.08-py3",
		"--result", "/result",
		"--datasetid", "90228:/data",
		"--label", "team=nlp",
		"--commandline", "set -e -x\nsleep 172800\nset +e +x",
	}, RunArgs(req))
}

func TestRunArgsWithoutOptionalFields(t *testing.T) {
	req := &api.JobRequest{
		Name:        "ml-model.test",
		Instance:    "dgx1v.16g.1.norm",
		Image:       "nvidia/pytorch:21.08-py3",
		ResultPath:  "/result",
		Commandline: "nvidia-smi",
	}

	args := RunArgs(req)
	assert.NotContains(t, args, "--datasetid")
	assert.NotContains(t, args, "--label")
	assert.Equal(t, "--commandline", args[len(args)-2])
}

func TestInfoArgs(t *testing.T) {
	assert.Equal(t, []string{"2839601", "--format_type", "json"}, InfoArgs("2839601"))
}

func TestKillArgs(t *testing.T) {
	assert.Equal(t, []string{"2839601"}, KillArgs("2839601"))
}
