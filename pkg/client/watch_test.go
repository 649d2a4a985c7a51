package client

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihaicode/nemolaunch/pkg/api"
	"github.com/mihaicode/nemolaunch/pkg/client/domain"
)

func statusSequencePoller(statuses []api.JobStatus) JobPoller {
	calls := 0
	return func(ctx context.Context, jobId string) (*api.Job, error) {
		status := statuses[calls]
		if calls < len(statuses)-1 {
			calls++
		}
		return &api.Job{Id: 17, JobStatus: &api.JobStatusInfo{Status: status}}, nil
	}
}

func TestWatchJobUntilTerminal(t *testing.T) {
	poller := statusSequencePoller([]api.JobStatus{
		api.JobStatusCreated,
		api.JobStatusQueued,
		api.JobStatusRunning,
		api.JobStatusRunning,
		api.JobStatusFinishedSuccess,
	})

	updates := 0
	state, err := WatchJob(context.Background(), poller, "17", time.Millisecond,
		func(state *domain.WatchContext, job *api.Job) bool {
			updates++
			return false
		})

	require.NoError(t, err)
	assert.Equal(t, 4, updates)
	assert.Equal(t, "CREATED -> QUEUED -> RUNNING -> FINISHED_SUCCESS", state.Summary())
	assert.True(t, state.Succeeded())
}

func TestWatchJobRetriesTransientErrors(t *testing.T) {
	calls := 0
	poller := func(ctx context.Context, jobId string) (*api.Job, error) {
		calls++
		if calls <= 2 {
			return nil, errors.New("transient")
		}
		return &api.Job{Id: 17, JobStatus: &api.JobStatusInfo{Status: api.JobStatusFinishedSuccess}}, nil
	}

	state, err := WatchJob(context.Background(), poller, "17", time.Millisecond, nil)

	require.NoError(t, err)
	assert.True(t, state.Finished())
	assert.Equal(t, 3, calls)
}

func TestWatchJobGivesUpAfterRetries(t *testing.T) {
	calls := 0
	poller := func(ctx context.Context, jobId string) (*api.Job, error) {
		calls++
		return nil, errors.New("service unavailable")
	}

	state, err := WatchJob(context.Background(), poller, "17", time.Millisecond, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch of job 17 failed")
	assert.Equal(t, watchRetryAttempts, calls)
	assert.False(t, state.Finished())
}

func TestWatchJobStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	poller := func(pollCtx context.Context, jobId string) (*api.Job, error) {
		cancel()
		return &api.Job{Id: 17, JobStatus: &api.JobStatusInfo{Status: api.JobStatusRunning}}, nil
	}

	state, err := WatchJob(ctx, poller, "17", time.Hour, nil)

	require.NoError(t, err)
	assert.False(t, state.Finished())
}

func TestWatchJobEarlyExitFromCallback(t *testing.T) {
	poller := statusSequencePoller([]api.JobStatus{api.JobStatusQueued, api.JobStatusRunning})

	state, err := WatchJob(context.Background(), poller, "17", time.Millisecond,
		func(state *domain.WatchContext, job *api.Job) bool {
			return state.CurrentStatus() == api.JobStatusRunning
		})

	require.NoError(t, err)
	assert.Equal(t, api.JobStatusRunning, state.CurrentStatus())
	assert.False(t, state.Finished())
}
