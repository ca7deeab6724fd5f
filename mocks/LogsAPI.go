package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/stretchr/testify/mock"
)

// LogsAPI is a mock type for the LogsAPI type
type LogsAPI struct {
	mock.Mock
}

// CreateLogGroup provides a mock function with given fields: ctx, params
func (m *LogsAPI) CreateLogGroup(ctx context.Context, params *cloudwatchlogs.CreateLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *cloudwatchlogs.CreateLogGroupOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*cloudwatchlogs.CreateLogGroupOutput)
	}

	return r0, ret.Error(1)
}

// CreateLogStream provides a mock function with given fields: ctx, params
func (m *LogsAPI) CreateLogStream(ctx context.Context, params *cloudwatchlogs.CreateLogStreamInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogStreamOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *cloudwatchlogs.CreateLogStreamOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*cloudwatchlogs.CreateLogStreamOutput)
	}

	return r0, ret.Error(1)
}

// PutLogEvents provides a mock function with given fields: ctx, params
func (m *LogsAPI) PutLogEvents(ctx context.Context, params *cloudwatchlogs.PutLogEventsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutLogEventsOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *cloudwatchlogs.PutLogEventsOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*cloudwatchlogs.PutLogEventsOutput)
	}

	return r0, ret.Error(1)
}
