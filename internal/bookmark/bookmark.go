package bookmark

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// FileName is the name of the bookmark object under a job prefix
const FileName = "bookmark.json"

// Entry is the bookmark of a job after a committed run
type Entry struct {
	JobName       string            `json:"jobName"`
	Version       int               `json:"version"`
	Run           int               `json:"run"`
	Attempt       int               `json:"attempt"`
	RunID         string            `json:"runId"`
	PreviousRunID string            `json:"previousRunId,omitempty"`
	CommittedAt   time.Time         `json:"committedAt"`
	State         map[string]string `json:"state,omitempty"`
}

// Store persists job bookmarks
type Store interface {
	// Load returns the bookmark of the job, nil when it has none
	Load(ctx context.Context, jobName string) (*Entry, error)
	Save(ctx context.Context, entry *Entry) error
	Reset(ctx context.Context, jobName string) error
}

// Advance returns the entry that follows prev for a commit of runID.
// Committing the same run again counts as a new attempt of that run.
func Advance(prev *Entry, jobName string, runID string, state map[string]string, now time.Time) *Entry {
	next := &Entry{
		JobName:     jobName,
		Version:     1,
		Run:         1,
		RunID:       runID,
		CommittedAt: now.UTC(),
	}

	merged := make(map[string]string)
	if prev != nil {
		next.Version = prev.Version + 1
		for key, value := range prev.State {
			merged[key] = value
		}

		if prev.RunID == runID {
			next.Run = prev.Run
			next.Attempt = prev.Attempt + 1
			next.PreviousRunID = prev.PreviousRunID
		} else {
			next.Run = prev.Run + 1
			next.PreviousRunID = prev.RunID
		}
	}
	for key, value := range state {
		merged[key] = value
	}
	if len(merged) > 0 {
		next.State = merged
	}

	return next
}

func decode(jobName string, data []byte) (*Entry, error) {
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decoding bookmark of %s: %w", jobName, err)
	}
	return &entry, nil
}

func encode(entry *Entry) ([]byte, error) {
	return json.MarshalIndent(entry, "", "  ")
}
