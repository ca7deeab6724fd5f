package objectstore

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ManagerDownloaderAPI is an interface used to mock API calls made to the aws S3 manager downloader
type ManagerDownloaderAPI interface {
	Download(
		ctx context.Context,
		w io.WriterAt,
		input *s3.GetObjectInput,
		options ...func(*manager.Downloader),
	) (n int64, err error)
}

// ManagerUploaderAPI is an interface used to mock API calls made to the aws S3 manager uploader
type ManagerUploaderAPI interface {
	Upload(
		ctx context.Context,
		input *s3.PutObjectInput,
		opts ...func(*manager.Uploader),
	) (*manager.UploadOutput, error)
}

// Download reads the whole object into memory
func Download(ctx context.Context, api ManagerDownloaderAPI, object Object) ([]byte, error) {
	buf := manager.NewWriteAtBuffer([]byte{})
	input := &s3.GetObjectInput{
		Bucket: aws.String(object.Bucket),
		Key:    aws.String(object.Key),
	}

	n, err := api.Download(ctx, buf, input)
	if err != nil {
		return nil, err
	}

	return buf.Bytes()[:n], nil
}

// Upload writes body to the object
func Upload(ctx context.Context, api ManagerUploaderAPI, object Object, body io.Reader) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(object.Bucket),
		Key:    aws.String(object.Key),
		Body:   body,
	}

	_, err := api.Upload(ctx, input)
	return err
}

// UploadBytes writes data to the object
func UploadBytes(ctx context.Context, api ManagerUploaderAPI, object Object, data []byte) error {
	return Upload(ctx, api, object, bytes.NewReader(data))
}
