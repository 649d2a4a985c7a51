package nemolaunch

import (
	"bytes"
	"crypto/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihaicode/nemolaunch/pkg/api"
	"github.com/mihaicode/nemolaunch/pkg/client"
	"github.com/mihaicode/nemolaunch/pkg/client/domain"
)

func newTestApp() (*App, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	app := &App{
		Params: &Params{
			CliConnectionDetails: &client.CliConnectionDetails{NgcPath: "ngc"},
			JobDefaults:          &client.JobDefaults{},
			BatchAPI:             &BatchAPI{},
		},
		Out:    buf,
		Random: rand.Reader,
	}
	return app, buf
}

func defaultRunConfig(wandbApiKey string) *RunConfig {
	return &RunConfig{
		Name:       DefaultJobName,
		Instance:   DefaultInstance,
		Image:      DefaultImage,
		ResultPath: DefaultResultPath,
		Datasets:   []api.DatasetMount{{ID: "90228", MountPoint: "/data"}},
		Setup:      domain.NewSetupScript(wandbApiKey),
	}
}

func TestVersion(t *testing.T) {
	app, buf := newTestApp()
	// A CLI path that cannot resolve, so the version probe degrades.
	app.Params.CliConnectionDetails.NgcPath = filepath.Join(t.TempDir(), "absent-ngc")

	require.NoError(t, app.Version())

	out := buf.String()
	for _, s := range []string{"Version", "Commit", "Go version", "Built"} {
		assert.Contains(t, out, s)
	}
	assert.Contains(t, out, "NGC CLI:")
	assert.Contains(t, out, "UNKNOWN")
}

func TestValidateParams(t *testing.T) {
	app, _ := newTestApp()
	assert.NoError(t, app.validateParams())

	app.Params.CliConnectionDetails.NgcPath = ""
	assert.Error(t, app.validateParams())

	app.Params.CliConnectionDetails = nil
	assert.Error(t, app.validateParams())
}

func TestNewWiresBatchAPI(t *testing.T) {
	app := New()
	assert.NotNil(t, app.Params.BatchAPI.Run)
	assert.NotNil(t, app.Params.BatchAPI.Submit)
	assert.NotNil(t, app.Params.BatchAPI.Info)
	assert.NotNil(t, app.Params.BatchAPI.Kill)
}
