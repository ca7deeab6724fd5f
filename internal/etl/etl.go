package etl

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/glue"
)

// EtlAPI is an interface used to mock API calls made to the aws Glue service
type EtlAPI interface {
	CreateJob(
		ctx context.Context,
		params *glue.CreateJobInput,
		optFns ...func(*glue.Options),
	) (*glue.CreateJobOutput, error)
	UpdateJob(
		ctx context.Context,
		params *glue.UpdateJobInput,
		optFns ...func(*glue.Options),
	) (*glue.UpdateJobOutput, error)
	StartJobRun(
		ctx context.Context,
		params *glue.StartJobRunInput,
		optFns ...func(*glue.Options),
	) (*glue.StartJobRunOutput, error)
	GetJobRun(
		ctx context.Context,
		params *glue.GetJobRunInput,
		optFns ...func(*glue.Options),
	) (*glue.GetJobRunOutput, error)
	GetJobBookmark(
		ctx context.Context,
		params *glue.GetJobBookmarkInput,
		optFns ...func(*glue.Options),
	) (*glue.GetJobBookmarkOutput, error)
	ResetJobBookmark(
		ctx context.Context,
		params *glue.ResetJobBookmarkInput,
		optFns ...func(*glue.Options),
	) (*glue.ResetJobBookmarkOutput, error)
}
