package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/glue"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/josenarvaezp/gluego/internal/access"
	"github.com/josenarvaezp/gluego/internal/config"
	"github.com/josenarvaezp/gluego/internal/etl"
	"github.com/josenarvaezp/gluego/internal/faas"
	"github.com/josenarvaezp/gluego/internal/objectstore"
)

// DefaultPollInterval is how often WaitRun checks the state of a run
const DefaultPollInterval = 15 * time.Second

// DriverInterface defines the methods available for the Driver
type DriverInterface interface {
	// deploy
	Deploy(ctx context.Context, input DeployInput) (string, error)

	// run
	StartRun(ctx context.Context, jobName string, arguments map[string]string) (string, error)
	WaitRun(ctx context.Context, jobName string, runID string) (*RunStatus, error)
	InvokeLambda(ctx context.Context, functionName string, arguments map[string]string) (*InvokeResult, error)

	// bookmarks
	GetBookmark(ctx context.Context, jobName string) (*Bookmark, error)
	ResetBookmark(ctx context.Context, jobName string, runID string) error
}

var _ DriverInterface = (*Driver)(nil)

// Driver is a struct that implements the Driver interface
type Driver struct {
	// clients
	EtlAPI      etl.EtlAPI
	UploaderAPI objectstore.ManagerUploaderAPI
	FaasAPI     faas.FaasAPI
	IamAPI      access.IamAPI
	StsAPI      access.StsAPI
	// user config
	Config       config.Config
	PollInterval time.Duration
}

// NewDriver creates a new Driver struct
func NewDriver(ctx context.Context, conf *config.Config) (*Driver, error) {
	cfg, err := conf.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &Driver{
		EtlAPI:       glue.NewFromConfig(cfg),
		UploaderAPI:  manager.NewUploader(s3Client),
		FaasAPI:      lambda.NewFromConfig(cfg),
		IamAPI:       iam.NewFromConfig(cfg),
		StsAPI:       sts.NewFromConfig(cfg),
		Config:       *conf,
		PollInterval: DefaultPollInterval,
	}, nil
}

// AccountID returns the configured account, asking STS when it is not set
func (d *Driver) AccountID(ctx context.Context) (string, error) {
	if d.Config.AccountID != "" {
		return d.Config.AccountID, nil
	}

	account, err := access.AccountID(ctx, d.StsAPI)
	if err != nil {
		return "", err
	}
	d.Config.AccountID = account

	return account, nil
}

// AssetsBucket returns the bucket job scripts are uploaded to. It defaults
// to the bucket the glue console creates for the account and region.
func (d *Driver) AssetsBucket(ctx context.Context) (string, error) {
	if d.Config.AssetsBucket != "" {
		return d.Config.AssetsBucket, nil
	}

	account, err := d.AccountID(ctx)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("aws-glue-assets-%s-%s", account, d.Config.Region), nil
}
