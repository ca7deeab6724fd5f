package glue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/josenarvaezp/gluego/internal/bookmark"
	"github.com/josenarvaezp/gluego/internal/queues"
)

// CompletionEvent is sent to the notification queue when a run commits
type CompletionEvent struct {
	JobName        string    `json:"jobName"`
	RunID          string    `json:"runId"`
	BookmarkOption string    `json:"bookmarkOption"`
	Run            int       `json:"run,omitempty"`
	CommittedAt    time.Time `json:"committedAt"`
}

// NewCompletionEvent describes the commit of the job
func NewCompletionEvent(j *Job, entry *bookmark.Entry) *CompletionEvent {
	event := &CompletionEvent{
		JobName:        j.Name,
		RunID:          j.RunID,
		BookmarkOption: j.Options.BookmarkOption(),
		CommittedAt:    j.now().UTC(),
	}
	if entry != nil {
		event.Run = entry.Run
	}
	return event
}

// SendCompletionEvent sends the event to the queue with the given name
func SendCompletionEvent(ctx context.Context, api queues.QueuesAPI, queueName string, event *CompletionEvent) error {
	urlOutput, err := api.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queueName),
	})
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, err = api.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    urlOutput.QueueUrl,
		MessageBody: aws.String(string(body)),
	})
	return err
}
