package lambdas

import (
	"bytes"
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/josenarvaezp/gluego/examples/helloworld"
	"github.com/josenarvaezp/gluego/internal/config"
	"github.com/josenarvaezp/gluego/pkg/args"
	"github.com/josenarvaezp/gluego/pkg/glue"
	log "github.com/sirupsen/logrus"
)

// JobHandler runs the job for lambda requests
type JobHandler struct {
	Config *config.Config
}

// NewJobHandler creates a handler with the given config
func NewJobHandler(conf *config.Config) *JobHandler {
	return &JobHandler{Config: conf}
}

// Handle runs the job with the request arguments. The lambda request id
// is the run id unless the request carries one.
func (h *JobHandler) Handle(ctx context.Context, request JobRequest) (*JobResponse, error) {
	arguments := make(map[string]string, len(request.Arguments)+1)
	for name, value := range request.Arguments {
		arguments[name] = value
	}
	if _, ok := arguments[args.JobRunID]; !ok {
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			arguments[args.JobRunID] = lc.AwsRequestID
		}
	}

	jobLogger := log.WithFields(log.Fields{
		"Job name": arguments[args.JobName],
		"Run ID":   arguments[args.JobRunID],
	})

	sc := glue.NewComputeContext(arguments[args.JobName])
	defer sc.Stop()

	gc, err := glue.NewGlueContext(ctx, sc, h.Config)
	if err != nil {
		jobLogger.WithError(err).Error("Error creating glue context")
		return nil, err
	}
	defer gc.Close()

	var out bytes.Buffer
	if err := helloworld.Run(ctx, gc, args.FromMap(arguments), &out); err != nil {
		jobLogger.WithError(err).Error("Error running job")
		return nil, err
	}

	return &JobResponse{
		JobName: arguments[args.JobName],
		RunID:   arguments[args.JobRunID],
		Output:  out.String(),
	}, nil
}
