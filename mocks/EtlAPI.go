package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/stretchr/testify/mock"
)

// EtlAPI is a mock type for the EtlAPI type
type EtlAPI struct {
	mock.Mock
}

// CreateJob provides a mock function with given fields: ctx, params
func (m *EtlAPI) CreateJob(ctx context.Context, params *glue.CreateJobInput, optFns ...func(*glue.Options)) (*glue.CreateJobOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *glue.CreateJobOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*glue.CreateJobOutput)
	}

	return r0, ret.Error(1)
}

// UpdateJob provides a mock function with given fields: ctx, params
func (m *EtlAPI) UpdateJob(ctx context.Context, params *glue.UpdateJobInput, optFns ...func(*glue.Options)) (*glue.UpdateJobOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *glue.UpdateJobOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*glue.UpdateJobOutput)
	}

	return r0, ret.Error(1)
}

// StartJobRun provides a mock function with given fields: ctx, params
func (m *EtlAPI) StartJobRun(ctx context.Context, params *glue.StartJobRunInput, optFns ...func(*glue.Options)) (*glue.StartJobRunOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *glue.StartJobRunOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*glue.StartJobRunOutput)
	}

	return r0, ret.Error(1)
}

// GetJobRun provides a mock function with given fields: ctx, params
func (m *EtlAPI) GetJobRun(ctx context.Context, params *glue.GetJobRunInput, optFns ...func(*glue.Options)) (*glue.GetJobRunOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *glue.GetJobRunOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*glue.GetJobRunOutput)
	}

	return r0, ret.Error(1)
}

// GetJobBookmark provides a mock function with given fields: ctx, params
func (m *EtlAPI) GetJobBookmark(ctx context.Context, params *glue.GetJobBookmarkInput, optFns ...func(*glue.Options)) (*glue.GetJobBookmarkOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *glue.GetJobBookmarkOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*glue.GetJobBookmarkOutput)
	}

	return r0, ret.Error(1)
}

// ResetJobBookmark provides a mock function with given fields: ctx, params
func (m *EtlAPI) ResetJobBookmark(ctx context.Context, params *glue.ResetJobBookmarkInput, optFns ...func(*glue.Options)) (*glue.ResetJobBookmarkOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *glue.ResetJobBookmarkOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*glue.ResetJobBookmarkOutput)
	}

	return r0, ret.Error(1)
}
