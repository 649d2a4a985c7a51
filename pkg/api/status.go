package api

// JobStatus is the lifecycle state the batch service reports for a job.
type JobStatus string

const (
	JobStatusCreated         JobStatus = "CREATED"
	JobStatusQueued          JobStatus = "QUEUED"
	JobStatusStarting        JobStatus = "STARTING"
	JobStatusRunning         JobStatus = "RUNNING"
	JobStatusFinishedSuccess JobStatus = "FINISHED_SUCCESS"
	JobStatusFailed          JobStatus = "FAILED"
	JobStatusFailedRunLimit  JobStatus = "FAILED_RUN_LIMIT_EXCEEDED"
	JobStatusKilledByUser    JobStatus = "KILLED_BY_USER"
	JobStatusKilledBySystem  JobStatus = "KILLED_BY_SYSTEM"
	JobStatusTaskLost        JobStatus = "TASK_LOST"
	JobStatusCanceled        JobStatus = "CANCELED"
	JobStatusUnknown         JobStatus = "UNKNOWN"
)

// Terminal reports whether the service will never move the job out of this
// state, i.e., whether a watch loop can stop polling.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusFinishedSuccess,
		JobStatusFailed,
		JobStatusFailedRunLimit,
		JobStatusKilledByUser,
		JobStatusKilledBySystem,
		JobStatusTaskLost,
		JobStatusCanceled:
		return true
	}
	return false
}

// Succeeded reports whether the job reached its only successful terminal state.
func (s JobStatus) Succeeded() bool {
	return s == JobStatusFinishedSuccess
}

// Job is the subset of the job JSON printed by `ngc batch info --format_type
// json` that this client consumes. Unknown fields are ignored on decode.
type Job struct {
	Id            int64          `json:"id"`
	JobDefinition *JobDefinition `json:"jobDefinition,omitempty"`
	JobStatus     *JobStatusInfo `json:"jobStatus,omitempty"`
}

// JobDefinition carries the immutable part of a submitted job.
type JobDefinition struct {
	Name string `json:"name,omitempty"`
}

// JobStatusInfo carries the mutable status block of a job.
type JobStatusInfo struct {
	Status JobStatus `json:"status,omitempty"`
}

// GetName returns the job name, or "" if the definition block is absent.
func (j *Job) GetName() string {
	if j == nil || j.JobDefinition == nil {
		return ""
	}
	return j.JobDefinition.Name
}

// GetStatus returns the reported status, or JobStatusUnknown if the status
// block is absent.
func (j *Job) GetStatus() JobStatus {
	if j == nil || j.JobStatus == nil || j.JobStatus.Status == "" {
		return JobStatusUnknown
	}
	return j.JobStatus.Status
}
