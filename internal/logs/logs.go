package logs

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	log "github.com/sirupsen/logrus"
)

// maximum number of events accepted by a single PutLogEvents call
const maxEventsPerBatch = 10000

// LogsAPI is an interface used to mock API calls made to the aws cloudwatch service
type LogsAPI interface {
	CreateLogGroup(
		ctx context.Context,
		params *cloudwatchlogs.CreateLogGroupInput,
		optFns ...func(*cloudwatchlogs.Options),
	) (*cloudwatchlogs.CreateLogGroupOutput, error)
	CreateLogStream(
		ctx context.Context,
		params *cloudwatchlogs.CreateLogStreamInput,
		optFns ...func(*cloudwatchlogs.Options),
	) (*cloudwatchlogs.CreateLogStreamOutput, error)
	PutLogEvents(
		ctx context.Context,
		params *cloudwatchlogs.PutLogEventsInput,
		optFns ...func(*cloudwatchlogs.Options),
	) (*cloudwatchlogs.PutLogEventsOutput, error)
}

// CloudWatchHook is a logrus hook that buffers log entries and ships
// them to a cloudwatch log stream on Flush
type CloudWatchHook struct {
	LogsAPI LogsAPI
	Group   string
	Stream  string

	formatter log.Formatter
	mu        sync.Mutex
	events    []types.InputLogEvent
	created   bool
}

// NewCloudWatchHook creates a hook for the given group and stream
func NewCloudWatchHook(api LogsAPI, group string, stream string) *CloudWatchHook {
	return &CloudWatchHook{
		LogsAPI:   api,
		Group:     group,
		Stream:    stream,
		formatter: &log.JSONFormatter{},
	}
}

// Levels implements log.Hook
func (h *CloudWatchHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire implements log.Hook
func (h *CloudWatchHook) Fire(entry *log.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.events = append(h.events, types.InputLogEvent{
		Message:   aws.String(strings.TrimSuffix(string(line), "\n")),
		Timestamp: aws.Int64(entry.Time.UnixMilli()),
	})

	return nil
}

// SetStream changes the stream events are shipped to
func (h *CloudWatchHook) SetStream(stream string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Stream != stream {
		h.Stream = stream
		h.created = false
	}
}

// Pending returns the number of buffered events
func (h *CloudWatchHook) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.events)
}

// Flush ships the buffered events. The log group and stream are created
// the first time events are shipped.
func (h *CloudWatchHook) Flush(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.events) == 0 {
		return nil
	}

	if !h.created {
		if err := h.createStream(ctx); err != nil {
			return err
		}
		h.created = true
	}

	// cloudwatch rejects batches that are not in chronological order
	sort.SliceStable(h.events, func(i, j int) bool {
		return *h.events[i].Timestamp < *h.events[j].Timestamp
	})

	for start := 0; start < len(h.events); start += maxEventsPerBatch {
		end := start + maxEventsPerBatch
		if end > len(h.events) {
			end = len(h.events)
		}

		_, err := h.LogsAPI.PutLogEvents(ctx, &cloudwatchlogs.PutLogEventsInput{
			LogGroupName:  aws.String(h.Group),
			LogStreamName: aws.String(h.Stream),
			LogEvents:     h.events[start:end],
		})
		if err != nil {
			// keep what was not shipped for the next flush
			h.events = h.events[start:]
			return err
		}
	}

	h.events = nil
	return nil
}

func (h *CloudWatchHook) createStream(ctx context.Context) error {
	_, err := h.LogsAPI.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(h.Group),
	})
	if err != nil && !alreadyExists(err) {
		return err
	}

	_, err = h.LogsAPI.CreateLogStream(ctx, &cloudwatchlogs.CreateLogStreamInput{
		LogGroupName:  aws.String(h.Group),
		LogStreamName: aws.String(h.Stream),
	})
	if err != nil && !alreadyExists(err) {
		return err
	}

	return nil
}

func alreadyExists(err error) bool {
	var exists *types.ResourceAlreadyExistsException
	return errors.As(err, &exists)
}
