package domain

import (
	"fmt"
	"path"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Defaults for the workspace payload. They reproduce the punctuation and
// capitalization training environment this tool was built around.
const (
	DefaultRepo           = "https://github.com/NVIDIA/NeMo"
	DefaultBranch         = "punctuate_capitalize_nmt"
	DefaultWorkDir        = "examples/nlp/machine_translation"
	DefaultResultDir      = "/result"
	DefaultTokenizerModel = "bert-base-uncased"
	DefaultOmpNumThreads  = 16
	DefaultKeepAlive      = 48 * time.Hour
)

// SetupScript describes the shell payload a workspace job runs on startup:
// clone the repo, check out the working branch, reinstall it, log in to
// wandb, warm the tokenizer cache and then idle so the workspace stays up
// for interactive use.
type SetupScript struct {
	// API key passed to `wandb login`. Required.
	WandbApiKey string `json:"wandbApiKey"`

	Repo           string          `json:"repo,omitempty"`
	Branch         string          `json:"branch,omitempty"`
	WorkDir        string          `json:"workDir,omitempty"`
	ResultDir      string          `json:"resultDir,omitempty"`
	TokenizerModel string          `json:"tokenizerModel,omitempty"`
	OmpNumThreads  int             `json:"ompNumThreads,omitempty"`
	KeepAlive      metav1.Duration `json:"keepAlive,omitempty"`
}

// NewSetupScript returns a SetupScript with every field but the wandb API
// key set to its default.
func NewSetupScript(wandbApiKey string) SetupScript {
	return SetupScript{WandbApiKey: wandbApiKey}.applyDefaults()
}

// applyDefaults fills zero-valued fields, so job files only need to name
// the fields they override.
func (s SetupScript) applyDefaults() SetupScript {
	if s.Repo == "" {
		s.Repo = DefaultRepo
	}
	if s.Branch == "" {
		s.Branch = DefaultBranch
	}
	if s.WorkDir == "" {
		s.WorkDir = DefaultWorkDir
	}
	if s.ResultDir == "" {
		s.ResultDir = DefaultResultDir
	}
	if s.TokenizerModel == "" {
		s.TokenizerModel = DefaultTokenizerModel
	}
	if s.OmpNumThreads == 0 {
		s.OmpNumThreads = DefaultOmpNumThreads
	}
	if s.KeepAlive.Duration == 0 {
		s.KeepAlive.Duration = DefaultKeepAlive
	}
	return s
}

// Render assembles the payload. The result is a plain multi-line shell
// script; quoting it for the submission CLI is the caller's concern.
func (s SetupScript) Render() string {
	lines := []string{
		"set -e -x",
		fmt.Sprintf("export OMP_NUM_THREADS=%d", s.OmpNumThreads),
		fmt.Sprintf("git clone %s", s.Repo),
		fmt.Sprintf("mkdir -p %s/checkpoints", s.ResultDir),
		fmt.Sprintf("cd %s", cloneDir(s.Repo)),
		fmt.Sprintf("git checkout %s", s.Branch),
		"./reinstall.sh",
		fmt.Sprintf("cd %s", s.WorkDir),
		fmt.Sprintf("wandb login %s", s.WandbApiKey),
		fmt.Sprintf("python -c \"from nemo.collections.nlp.modules.common.tokenizer_utils import get_tokenizer; get_tokenizer('%s')\"", s.TokenizerModel),
		fmt.Sprintf("sleep %d", int64(s.KeepAlive.Duration/time.Second)),
		"set +e +x",
	}
	return strings.Join(lines, "\n")
}

// cloneDir is the directory `git clone` creates for a repo url.
func cloneDir(repo string) string {
	return path.Base(strings.TrimSuffix(repo, ".git"))
}
