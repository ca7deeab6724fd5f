package objectstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrInvalidURI is returned when a location is not an s3:// URI
var ErrInvalidURI = errors.New("invalid s3 uri")

// ObjectStoreAPI is an interface used to mock API calls made to the aws S3 service
type ObjectStoreAPI interface {
	DeleteObject(
		ctx context.Context,
		params *s3.DeleteObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.DeleteObjectOutput, error)
}

// Object represent a cloud object
type Object struct {
	Bucket string
	Key    string
}

// NewObject creates an object from its bucket and key parts. Empty parts
// in the key are dropped.
func NewObject(bucket string, keyParts ...string) Object {
	parts := make([]string, 0, len(keyParts))
	for _, part := range keyParts {
		part = strings.Trim(part, "/")
		if part != "" {
			parts = append(parts, part)
		}
	}

	return Object{
		Bucket: bucket,
		Key:    strings.Join(parts, "/"),
	}
}

// ParseURI parses a location of the form s3://bucket/key
func ParseURI(uri string) (Object, error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return Object{}, fmt.Errorf("%w: %q", ErrInvalidURI, uri)
	}

	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return Object{}, fmt.Errorf("%w: %q has no bucket", ErrInvalidURI, uri)
	}

	return Object{Bucket: bucket, Key: key}, nil
}

// URI returns the s3:// location of the object
func (o Object) URI() string {
	if o.Key == "" {
		return fmt.Sprintf("s3://%s/", o.Bucket)
	}
	return fmt.Sprintf("s3://%s/%s", o.Bucket, o.Key)
}

// IsNotFound checks if the error returned by S3 means the object does not exist
func IsNotFound(err error) bool {
	var noSuchKey *s3Types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *s3Types.NotFound
	return errors.As(err, &notFound)
}
