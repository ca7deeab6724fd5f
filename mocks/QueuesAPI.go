package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/mock"
)

// QueuesAPI is a mock type for the QueuesAPI type
type QueuesAPI struct {
	mock.Mock
}

// GetQueueUrl provides a mock function with given fields: ctx, params
func (m *QueuesAPI) GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *sqs.GetQueueUrlOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sqs.GetQueueUrlOutput)
	}

	return r0, ret.Error(1)
}

// SendMessage provides a mock function with given fields: ctx, params
func (m *QueuesAPI) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *sqs.SendMessageOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*sqs.SendMessageOutput)
	}

	return r0, ret.Error(1)
}
