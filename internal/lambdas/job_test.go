package lambdas

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/josenarvaezp/gluego/examples/helloworld"
	"github.com/josenarvaezp/gluego/internal/config"
	"github.com/josenarvaezp/gluego/pkg/args"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *JobHandler {
	conf := config.Default()
	conf.BookmarkDir = t.TempDir()
	return NewJobHandler(conf)
}

func Test_Handle_HappyPath(t *testing.T) {
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "c6af9ac6-7b61-11e6-9a41-93e8deadbeef",
	})

	res, err := newTestHandler(t).Handle(ctx, JobRequest{
		Arguments: map[string]string{"JOB_NAME": "helloworld"},
	})
	require.Nil(t, err)
	assert.Equal(t, "helloworld", res.JobName)
	assert.Equal(t, "c6af9ac6-7b61-11e6-9a41-93e8deadbeef", res.RunID)
	assert.Contains(t, res.Output, helloworld.Banner)
	assert.Contains(t, res.Output, "|Hello|World|  1|")
}

func Test_Handle_KeepsRunID(t *testing.T) {
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "request-id",
	})

	res, err := newTestHandler(t).Handle(ctx, JobRequest{
		Arguments: map[string]string{"JOB_NAME": "helloworld", "JOB_RUN_ID": "jr_1"},
	})
	require.Nil(t, err)
	assert.Equal(t, "jr_1", res.RunID)
}

func Test_Handle_UnhappyPath(t *testing.T) {
	res, err := newTestHandler(t).Handle(context.Background(), JobRequest{})
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, args.ErrMissingArgument))
}
