package mocks

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// ObjectStoreAPI is a mock type for the ObjectStoreAPI type
type ObjectStoreAPI struct {
	mock.Mock
}

// DeleteObject provides a mock function with given fields: ctx, params
func (m *ObjectStoreAPI) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	ret := m.Called(ctx, params)

	var r0 *s3.DeleteObjectOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*s3.DeleteObjectOutput)
	}

	return r0, ret.Error(1)
}

// ManagerDownloaderAPI is a mock type for the ManagerDownloaderAPI type
type ManagerDownloaderAPI struct {
	mock.Mock
}

// Download provides a mock function with given fields: ctx, w, input
func (m *ManagerDownloaderAPI) Download(ctx context.Context, w io.WriterAt, input *s3.GetObjectInput, options ...func(*manager.Downloader)) (int64, error) {
	ret := m.Called(ctx, w, input)

	var r0 int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	return r0, ret.Error(1)
}

// ManagerUploaderAPI is a mock type for the ManagerUploaderAPI type
type ManagerUploaderAPI struct {
	mock.Mock
}

// Upload provides a mock function with given fields: ctx, input
func (m *ManagerUploaderAPI) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	ret := m.Called(ctx, input)

	var r0 *manager.UploadOutput
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*manager.UploadOutput)
	}

	return r0, ret.Error(1)
}
