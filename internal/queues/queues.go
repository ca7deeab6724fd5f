package queues

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// QueuesAPI is an interface used to mock API calls made to the aws SQS service
type QueuesAPI interface {
	GetQueueUrl(
		ctx context.Context,
		params *sqs.GetQueueUrlInput,
		optFns ...func(*sqs.Options),
	) (*sqs.GetQueueUrlOutput, error)
	SendMessage(
		ctx context.Context,
		params *sqs.SendMessageInput,
		optFns ...func(*sqs.Options),
	) (*sqs.SendMessageOutput, error)
}
