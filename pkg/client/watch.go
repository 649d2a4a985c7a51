package client

import (
	"context"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mihaicode/nemolaunch/pkg/api"
	"github.com/mihaicode/nemolaunch/pkg/client/domain"
)

// JobPoller fetches the current record of a job. batch.Info satisfies it.
type JobPoller func(ctx context.Context, jobId string) (*api.Job, error)

const watchRetryAttempts = 4

// WatchJob polls a job until it reaches a terminal state or the context is
// cancelled. onUpdate runs after every snapshot that changes the tracked
// state and can return true to stop watching early.
//
// Transient poll failures are retried; WatchJob only returns an error once
// the retry budget for a single poll is exhausted.
func WatchJob(
	ctx context.Context,
	poll JobPoller,
	jobId string,
	pollInterval time.Duration,
	onUpdate func(*domain.WatchContext, *api.Job) bool,
) (*domain.WatchContext, error) {
	state := domain.NewWatchContext(jobId)

	for {
		var job *api.Job
		err := retry.Do(
			func() error {
				var err error
				job, err = poll(ctx, jobId)
				return err
			},
			retry.Attempts(watchRetryAttempts),
			retry.Delay(pollInterval),
			retry.DelayType(retry.FixedDelay),
			retry.LastErrorOnly(true),
			retry.OnRetry(func(n uint, err error) {
				log.Warnf("error polling job %s (attempt %d): %s", jobId, n+1, err)
			}),
		)
		if ctx.Err() != nil {
			// Cancelled watches are not failures.
			return state, nil
		}
		if err != nil {
			return state, errors.Wrapf(err, "watch of job %s failed", jobId)
		}

		if state.ProcessSnapshot(job) {
			if onUpdate != nil && onUpdate(state, job) {
				return state, nil
			}
		}
		if state.Finished() {
			return state, nil
		}

		select {
		case <-ctx.Done():
			return state, nil
		case <-time.After(pollInterval):
		}
	}
}
