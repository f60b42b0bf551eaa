package domain

import (
	"fmt"
	"time"
)

type JobID string

type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
	JobStatusTimedOut  JobStatus = "timed_out"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusQueued, JobStatusRunning, JobStatusSucceeded, JobStatusFailed, JobStatusTimedOut:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusSucceeded, JobStatusFailed, JobStatusTimedOut:
		return true
	case JobStatusQueued, JobStatusRunning:
		return false
	default:
		return false
	}
}

func ParseJobStatus(raw string) (JobStatus, error) {
	status := JobStatus(raw)
	if !status.Valid() {
		return "", fmt.Errorf("unknown job status %q", raw)
	}

	return status, nil
}

// CommandJob is one submitted command and its tracked execution outcome.
// Output and Error are empty when nothing was captured.
type CommandJob struct {
	ID          JobID
	Command     string
	Status      JobStatus
	SubmittedAt time.Time
	StartedAt   time.Time
	FinishedAt  time.Time
	Output      string
	Error       string
	Attempts    int
}

func (j CommandJob) Finished() bool {
	return j.Status.IsTerminal()
}
