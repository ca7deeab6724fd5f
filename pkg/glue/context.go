// Package glue is the runtime a job script uses: a compute context, the
// glue context wrapping it, the session that builds frames and the job
// whose commit records a completed run.
package glue

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/josenarvaezp/gluego/internal/bookmark"
	"github.com/josenarvaezp/gluego/internal/config"
	"github.com/josenarvaezp/gluego/internal/logs"
	"github.com/josenarvaezp/gluego/internal/queues"
	"github.com/josenarvaezp/gluego/pkg/dataframe"
	log "github.com/sirupsen/logrus"
)

// ComputeContext is the handle of the compute runtime a job runs on
type ComputeContext struct {
	AppName   string
	AppID     string
	StartTime time.Time

	mu      sync.Mutex
	stopped bool
}

// NewComputeContext starts a compute context for the application
func NewComputeContext(appName string) *ComputeContext {
	return &ComputeContext{
		AppName:   appName,
		AppID:     "app-" + uuid.New().String(),
		StartTime: time.Now(),
	}
}

// Stop stops the context. Stopping a stopped context does nothing.
func (c *ComputeContext) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
}

// Stopped reports whether Stop was called
func (c *ComputeContext) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// GlueContext wraps a compute context with the clients and configuration
// jobs need
type GlueContext struct {
	ComputeContext *ComputeContext
	Config         config.Config
	// clients
	Bookmarks bookmark.Store
	QueuesAPI queues.QueuesAPI
	LogsHook  *logs.CloudWatchHook

	session *Session
	once    sync.Once
}

// NewGlueContext creates a glue context. Aws clients are only created for
// the features the config turns on; without them jobs keep bookmarks on
// the local filesystem.
func NewGlueContext(ctx context.Context, sc *ComputeContext, conf *config.Config) (*GlueContext, error) {
	gc := &GlueContext{
		ComputeContext: sc,
		Config:         *conf,
		Bookmarks:      bookmark.NewFileStore(conf.BookmarkDir),
	}

	if !conf.UsesAWS() {
		return gc, nil
	}

	cfg, err := conf.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	if conf.BookmarkBucket != "" {
		gc.Bookmarks = bookmark.NewS3Store(cfg, conf.BookmarkBucket, conf.BookmarkPrefix)
	}
	if conf.NotifyQueue != "" {
		gc.QueuesAPI = sqs.NewFromConfig(cfg)
	}
	if conf.LogGroup != "" {
		gc.LogsHook = logs.NewCloudWatchHook(cloudwatchlogs.NewFromConfig(cfg), conf.LogGroup, sc.AppID)
		log.AddHook(gc.LogsHook)
	}

	return gc, nil
}

// Close detaches the log hook of the context from the standard logger
func (gc *GlueContext) Close() {
	if gc.LogsHook == nil {
		return
	}

	logger := log.StandardLogger()
	hooks := make(log.LevelHooks)
	for level, levelHooks := range logger.Hooks {
		for _, hook := range levelHooks {
			if hook != log.Hook(gc.LogsHook) {
				hooks[level] = append(hooks[level], hook)
			}
		}
	}
	logger.ReplaceHooks(hooks)
}

// Session returns the session of the context
func (gc *GlueContext) Session() *Session {
	gc.once.Do(func() {
		gc.session = &Session{gc: gc}
	})
	return gc.session
}

// Session builds frames for a glue context
type Session struct {
	gc *GlueContext
}

// CreateDataFrame builds a frame from local rows
func (s *Session) CreateDataFrame(data [][]any, columns []string) (*dataframe.DataFrame, error) {
	df, err := dataframe.CreateDataFrame(data, columns)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"App ID":  s.gc.ComputeContext.AppID,
		"Columns": columns,
		"Rows":    df.Count(),
	}).Debug("Created data frame")

	return df, nil
}
