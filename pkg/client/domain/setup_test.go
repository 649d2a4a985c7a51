package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestRenderDefaultPayload(t *testing.T) {
	expected := strings.Join([]string{
		"set -e -x",
		"export OMP_NUM_THREADS=16",
		"git clone https://github.com/NVIDIA/NeMo",
		"mkdir -p /result/checkpoints",
		"cd NeMo",
		"git checkout punctuate_capitalize_nmt",
		"./reinstall.sh",
		"cd examples/nlp/machine_translation",
		"wandb login secret123",
		`python -c "from nemo.collections.nlp.modules.common.tokenizer_utils import get_tokenizer; get_tokenizer('bert-base-uncased')"`,
		"sleep 172800",
		"set +e +x",
	}, "\n")

	assert.Equal(t, expected, NewSetupScript("secret123").Render())
}

func TestRenderContainsKeyExactlyOnce(t *testing.T) {
	payload := NewSetupScript("an-api-key").Render()
	assert.Equal(t, 1, strings.Count(payload, "an-api-key"))
	assert.Contains(t, payload, "wandb login an-api-key")
}

func TestRenderOverrides(t *testing.T) {
	setup := NewSetupScript("key")
	setup.Repo = "https://github.com/NVIDIA/NeMo-text-processing.git"
	setup.Branch = "main"
	setup.KeepAlive = metav1.Duration{Duration: time.Hour}

	payload := setup.Render()
	assert.Contains(t, payload, "git clone https://github.com/NVIDIA/NeMo-text-processing.git")
	assert.Contains(t, payload, "cd NeMo-text-processing")
	assert.Contains(t, payload, "git checkout main")
	assert.Contains(t, payload, "sleep 3600")
}

func TestApplyDefaultsKeepsOverrides(t *testing.T) {
	setup := SetupScript{
		WandbApiKey:   "key",
		Branch:        "my-branch",
		OmpNumThreads: 4,
	}.applyDefaults()

	assert.Equal(t, "my-branch", setup.Branch)
	assert.Equal(t, 4, setup.OmpNumThreads)
	assert.Equal(t, DefaultRepo, setup.Repo)
	assert.Equal(t, DefaultWorkDir, setup.WorkDir)
	assert.Equal(t, DefaultKeepAlive, setup.KeepAlive.Duration)
}

func TestCloneDir(t *testing.T) {
	assert.Equal(t, "NeMo", cloneDir("https://github.com/NVIDIA/NeMo"))
	assert.Equal(t, "NeMo", cloneDir("https://github.com/NVIDIA/NeMo.git"))
	assert.Equal(t, "repo", cloneDir("git@host:org/repo.git"))
}
