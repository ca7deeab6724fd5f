package driver

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/glue/types"
)

// Bookmark is the bookmark the managed service keeps for a job
type Bookmark struct {
	JobName       string
	Version       int32
	Run           int32
	Attempt       int32
	RunID         string
	PreviousRunID string
	State         string
}

// GetBookmark returns the service bookmark of the job, nil when the job
// has none
func (d *Driver) GetBookmark(ctx context.Context, jobName string) (*Bookmark, error) {
	res, err := d.EtlAPI.GetJobBookmark(ctx, &glue.GetJobBookmarkInput{
		JobName: aws.String(jobName),
	})
	if err != nil {
		if entityNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	entry := res.JobBookmarkEntry
	if entry == nil {
		return nil, nil
	}

	return &Bookmark{
		JobName:       aws.ToString(entry.JobName),
		Version:       entry.Version,
		Run:           entry.Run,
		Attempt:       entry.Attempt,
		RunID:         aws.ToString(entry.RunId),
		PreviousRunID: aws.ToString(entry.PreviousRunId),
		State:         aws.ToString(entry.JobBookmark),
	}, nil
}

// ResetBookmark resets the service bookmark of the job. With a run id the
// bookmark is reset to the state before that run.
func (d *Driver) ResetBookmark(ctx context.Context, jobName string, runID string) error {
	input := &glue.ResetJobBookmarkInput{
		JobName: aws.String(jobName),
	}
	if runID != "" {
		input.RunId = aws.String(runID)
	}

	_, err := d.EtlAPI.ResetJobBookmark(ctx, input)
	return err
}

func entityNotFound(err error) bool {
	var notFound *types.EntityNotFoundException
	return errors.As(err, &notFound)
}
