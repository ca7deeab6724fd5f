package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/glue/types"
	"github.com/josenarvaezp/gluego/internal/access"
	"github.com/josenarvaezp/gluego/internal/objectstore"
	log "github.com/sirupsen/logrus"
)

const (
	scriptsPrefix          = "scripts"
	etlCommandName         = "glueetl"
	defaultGlueVersion     = "4.0"
	defaultWorkerType      = "G.1X"
	defaultNumberOfWorkers = int32(2)
	defaultPythonVersion   = "3"
)

// DeployInput describes the job to create or update
type DeployInput struct {
	JobName          string
	ScriptPath       string
	Role             string
	GlueVersion      string
	WorkerType       string
	NumberOfWorkers  int32
	DefaultArguments map[string]string
}

func (in *DeployInput) setDefaults() {
	if in.GlueVersion == "" {
		in.GlueVersion = defaultGlueVersion
	}
	if in.WorkerType == "" {
		in.WorkerType = defaultWorkerType
	}
	if in.NumberOfWorkers == 0 {
		in.NumberOfWorkers = defaultNumberOfWorkers
	}
}

// Deploy uploads the job script and creates the job, or updates it when it
// already exists. It returns the script location.
func (d *Driver) Deploy(ctx context.Context, input DeployInput) (string, error) {
	input.setDefaults()

	if input.JobName == "" {
		return "", errors.New("job name is required")
	}

	bucket, err := d.AssetsBucket(ctx)
	if err != nil {
		return "", err
	}

	roleArn, err := access.RoleArn(ctx, d.IamAPI, input.Role)
	if err != nil {
		return "", err
	}

	script, err := d.scriptLocation(ctx, bucket, input)
	if err != nil {
		return "", err
	}

	command := &types.JobCommand{
		Name:           aws.String(etlCommandName),
		ScriptLocation: aws.String(script.URI()),
		PythonVersion:  aws.String(defaultPythonVersion),
	}

	deployLogger := log.WithFields(log.Fields{
		"Job name": input.JobName,
		"Script":   script.URI(),
	})

	_, err = d.EtlAPI.CreateJob(ctx, &glue.CreateJobInput{
		Name:             aws.String(input.JobName),
		Role:             aws.String(roleArn),
		Command:          command,
		DefaultArguments: input.DefaultArguments,
		GlueVersion:      aws.String(input.GlueVersion),
		WorkerType:       types.WorkerType(input.WorkerType),
		NumberOfWorkers:  aws.Int32(input.NumberOfWorkers),
	})
	if err == nil {
		deployLogger.Info("Job created")
		return script.URI(), nil
	}
	if !jobAlreadyExists(err) {
		return "", err
	}

	_, err = d.EtlAPI.UpdateJob(ctx, &glue.UpdateJobInput{
		JobName: aws.String(input.JobName),
		JobUpdate: &types.JobUpdate{
			Role:             aws.String(roleArn),
			Command:          command,
			DefaultArguments: input.DefaultArguments,
			GlueVersion:      aws.String(input.GlueVersion),
			WorkerType:       types.WorkerType(input.WorkerType),
			NumberOfWorkers:  aws.Int32(input.NumberOfWorkers),
		},
	})
	if err != nil {
		return "", err
	}

	deployLogger.Info("Job updated")
	return script.URI(), nil
}

// scriptLocation uploads a local script to the assets bucket. Scripts
// already in S3 are used where they are.
func (d *Driver) scriptLocation(ctx context.Context, bucket string, input DeployInput) (objectstore.Object, error) {
	if strings.HasPrefix(input.ScriptPath, "s3://") {
		return objectstore.ParseURI(input.ScriptPath)
	}

	script := objectstore.NewObject(
		bucket,
		scriptsPrefix,
		input.JobName+filepath.Ext(input.ScriptPath),
	)
	file, err := os.Open(input.ScriptPath)
	if err != nil {
		return objectstore.Object{}, err
	}
	defer file.Close()

	if err := objectstore.Upload(ctx, d.UploaderAPI, script, file); err != nil {
		return objectstore.Object{}, fmt.Errorf("uploading script: %w", err)
	}

	return script, nil
}

// jobAlreadyExists checks if the job being created already exists
func jobAlreadyExists(err error) bool {
	var alreadyExists *types.AlreadyExistsException
	return errors.As(err, &alreadyExists)
}
