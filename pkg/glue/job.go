package glue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/josenarvaezp/gluego/internal/bookmark"
	"github.com/josenarvaezp/gluego/pkg/args"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotInitialized     = errors.New("job is not initialized")
	ErrAlreadyInitialized = errors.New("job is already initialized")
	ErrAlreadyCommitted   = errors.New("job is already committed")
	ErrEmptyJobName       = errors.New("job name is empty")
	ErrNoBookmarkStore    = errors.New("no bookmark store configured")
)

// RunState is the state of a job run
type RunState string

const (
	StateNew         RunState = "NEW"
	StateInitialized RunState = "INITIALIZED"
	StateCommitted   RunState = "COMMITTED"
)

// Job is a run of a job script
type Job struct {
	Name    string
	RunID   string
	Options args.Options
	State   RunState

	gc       *GlueContext
	previous *bookmark.Entry
	saved    *bookmark.Entry
	state    map[string]string
	logger   *log.Entry
	now      func() time.Time
}

// NewJob creates a job for the glue context
func NewJob(gc *GlueContext) *Job {
	return &Job{
		State: StateNew,
		gc:    gc,
		state: make(map[string]string),
		now:   time.Now,
	}
}

// Init starts the run of the job. The previous bookmark is loaded unless
// bookmarks are disabled.
func (j *Job) Init(ctx context.Context, name string, options args.Options) error {
	if j.State != StateNew {
		return ErrAlreadyInitialized
	}
	if name == "" {
		return ErrEmptyJobName
	}

	j.Name = name
	j.Options = options
	j.RunID = options.RunID()
	if j.RunID == "" {
		j.RunID = "jr_" + uuid.New().String()
	}
	j.logger = log.WithFields(log.Fields{
		"Job name": j.Name,
		"Run ID":   j.RunID,
	})

	if j.gc.LogsHook != nil {
		j.gc.LogsHook.SetStream(j.RunID)
	}

	if options.BookmarkOption() != args.BookmarkDisable {
		if j.gc.Bookmarks == nil {
			return ErrNoBookmarkStore
		}
		previous, err := j.gc.Bookmarks.Load(ctx, name)
		if err != nil {
			return fmt.Errorf("loading bookmark: %w", err)
		}
		j.previous = previous
	}

	j.State = StateInitialized
	j.logger.WithField("Bookmark", options.BookmarkOption()).Info("Job initialized")

	return nil
}

// Bookmark returns the bookmark the run started from, nil for the first
// run or when bookmarks are disabled
func (j *Job) Bookmark() *bookmark.Entry {
	return j.previous
}

// SetState records bookmark state that is persisted on commit
func (j *Job) SetState(key string, value string) {
	j.state[key] = value
}

// Commit marks the run as completed. With bookmarks enabled the bookmark
// is advanced; a paused bookmark is left as it was.
func (j *Job) Commit(ctx context.Context) error {
	switch j.State {
	case StateNew:
		return ErrNotInitialized
	case StateCommitted:
		return ErrAlreadyCommitted
	}

	option := j.Options.BookmarkOption()
	entry := j.previous
	if option == args.BookmarkEnable {
		// a retried commit advances from what this run already saved
		base := j.previous
		if j.saved != nil {
			base = j.saved
		}
		entry = bookmark.Advance(base, j.Name, j.RunID, j.state, j.now())
		if err := j.gc.Bookmarks.Save(ctx, entry); err != nil {
			return fmt.Errorf("saving bookmark: %w", err)
		}
		j.saved = entry
	}

	if j.gc.QueuesAPI != nil && j.gc.Config.NotifyQueue != "" {
		event := NewCompletionEvent(j, entry)
		if err := SendCompletionEvent(ctx, j.gc.QueuesAPI, j.gc.Config.NotifyQueue, event); err != nil {
			return fmt.Errorf("sending completion event: %w", err)
		}
	}

	j.State = StateCommitted
	j.logger.Info("Job committed")

	if j.gc.LogsHook != nil {
		if err := j.gc.LogsHook.Flush(ctx); err != nil {
			j.logger.WithError(err).Warn("Error shipping job logs")
		}
	}

	return nil
}
