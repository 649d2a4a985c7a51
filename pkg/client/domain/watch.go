package domain

import (
	"strings"
	"time"

	"github.com/mihaicode/nemolaunch/pkg/api"
)

// WatchContext keeps track of the current state when processing a stream of
// polled job snapshots. It is not threadsafe and is expected to only ever
// be used in a single thread.
type WatchContext struct {
	jobId      string
	current    *api.Job
	history    []api.JobStatus
	lastUpdate time.Time
}

func NewWatchContext(jobId string) *WatchContext {
	return &WatchContext{
		jobId:   jobId,
		history: make([]api.JobStatus, 0, 8),
	}
}

// ProcessSnapshot folds a polled job into the context and reports whether
// the status changed since the previous snapshot.
func (context *WatchContext) ProcessSnapshot(job *api.Job) bool {
	context.current = job
	context.lastUpdate = time.Now()

	status := job.GetStatus()
	if n := len(context.history); n > 0 && context.history[n-1] == status {
		return false
	}
	context.history = append(context.history, status)
	return true
}

func (context *WatchContext) JobId() string {
	return context.jobId
}

func (context *WatchContext) CurrentJob() *api.Job {
	return context.current
}

func (context *WatchContext) CurrentStatus() api.JobStatus {
	if len(context.history) == 0 {
		return api.JobStatusUnknown
	}
	return context.history[len(context.history)-1]
}

func (context *WatchContext) LastUpdate() time.Time {
	return context.lastUpdate
}

// Finished reports whether the job has reached a terminal state.
func (context *WatchContext) Finished() bool {
	return context.CurrentStatus().Terminal()
}

// Succeeded reports whether the job finished successfully.
func (context *WatchContext) Succeeded() bool {
	return context.CurrentStatus().Succeeded()
}

// Summary renders the observed status transitions, e.g.
// "QUEUED -> RUNNING -> FINISHED_SUCCESS".
func (context *WatchContext) Summary() string {
	states := make([]string, 0, len(context.history))
	for _, status := range context.history {
		states = append(states, string(status))
	}
	return strings.Join(states, " -> ")
}
