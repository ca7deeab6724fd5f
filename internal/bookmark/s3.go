package bookmark

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/josenarvaezp/gluego/internal/objectstore"
)

// S3Store keeps bookmarks at s3://<bucket>/<prefix>/<job>/bookmark.json
type S3Store struct {
	Bucket string
	Prefix string
	// clients
	DownloaderAPI  objectstore.ManagerDownloaderAPI
	UploaderAPI    objectstore.ManagerUploaderAPI
	ObjectStoreAPI objectstore.ObjectStoreAPI
}

// NewS3Store creates a store with clients from the aws config
func NewS3Store(cfg aws.Config, bucket string, prefix string) *S3Store {
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return &S3Store{
		Bucket:         bucket,
		Prefix:         prefix,
		DownloaderAPI:  manager.NewDownloader(s3Client),
		UploaderAPI:    manager.NewUploader(s3Client),
		ObjectStoreAPI: s3Client,
	}
}

// Object returns the location of the job's bookmark
func (s *S3Store) Object(jobName string) objectstore.Object {
	return objectstore.NewObject(s.Bucket, s.Prefix, jobName, FileName)
}

// Load implements Store
func (s *S3Store) Load(ctx context.Context, jobName string) (*Entry, error) {
	data, err := objectstore.Download(ctx, s.DownloaderAPI, s.Object(jobName))
	if err != nil {
		if objectstore.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return decode(jobName, data)
}

// Save implements Store
func (s *S3Store) Save(ctx context.Context, entry *Entry) error {
	data, err := encode(entry)
	if err != nil {
		return err
	}

	return objectstore.UploadBytes(ctx, s.UploaderAPI, s.Object(entry.JobName), data)
}

// Reset implements Store
func (s *S3Store) Reset(ctx context.Context, jobName string) error {
	object := s.Object(jobName)
	_, err := s.ObjectStoreAPI.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(object.Bucket),
		Key:    aws.String(object.Key),
	})
	return err
}
