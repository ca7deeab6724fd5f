package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/glue/types"
	"github.com/josenarvaezp/gluego/pkg/args"
	log "github.com/sirupsen/logrus"
)

// ErrRunFailed is returned when a run ends in a state other than SUCCEEDED
var ErrRunFailed = errors.New("job run did not succeed")

// RunStatus is the state of a job run
type RunStatus struct {
	JobName      string
	RunID        string
	State        types.JobRunState
	ErrorMessage string
	StartedOn    *time.Time
	CompletedOn  *time.Time
}

// IsTerminal reports whether the run has finished
func (s *RunStatus) IsTerminal() bool {
	switch s.State {
	case types.JobRunStateSucceeded,
		types.JobRunStateFailed,
		types.JobRunStateStopped,
		types.JobRunStateTimeout,
		types.JobRunState("ERROR"),
		types.JobRunState("EXPIRED"):
		return true
	default:
		return false
	}
}

// StartRun starts a run of the job and returns its id
func (d *Driver) StartRun(ctx context.Context, jobName string, arguments map[string]string) (string, error) {
	res, err := d.EtlAPI.StartJobRun(ctx, &glue.StartJobRunInput{
		JobName:   aws.String(jobName),
		Arguments: args.ServiceArguments(arguments),
	})
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"Job name": jobName,
		"Run ID":   aws.ToString(res.JobRunId),
	}).Info("Job run started")

	return aws.ToString(res.JobRunId), nil
}

// GetRun returns the current status of a run
func (d *Driver) GetRun(ctx context.Context, jobName string, runID string) (*RunStatus, error) {
	res, err := d.EtlAPI.GetJobRun(ctx, &glue.GetJobRunInput{
		JobName: aws.String(jobName),
		RunId:   aws.String(runID),
	})
	if err != nil {
		return nil, err
	}
	if res.JobRun == nil {
		return nil, fmt.Errorf("job run %s of %s not found", runID, jobName)
	}

	return &RunStatus{
		JobName:      jobName,
		RunID:        runID,
		State:        res.JobRun.JobRunState,
		ErrorMessage: aws.ToString(res.JobRun.ErrorMessage),
		StartedOn:    res.JobRun.StartedOn,
		CompletedOn:  res.JobRun.CompletedOn,
	}, nil
}

// WaitRun polls the run until it finishes. Runs that finish in a state
// other than SUCCEEDED return ErrRunFailed along with their status.
func (d *Driver) WaitRun(ctx context.Context, jobName string, runID string) (*RunStatus, error) {
	interval := d.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runLogger := log.WithFields(log.Fields{
		"Job name": jobName,
		"Run ID":   runID,
	})

	for {
		status, err := d.GetRun(ctx, jobName, runID)
		if err != nil {
			return nil, err
		}

		if status.IsTerminal() {
			if status.State != types.JobRunStateSucceeded {
				return status, fmt.Errorf("%w: %s %s", ErrRunFailed, status.State, status.ErrorMessage)
			}
			return status, nil
		}
		runLogger.WithField("State", status.State).Debug("Waiting for job run")

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}
