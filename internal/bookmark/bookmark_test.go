package bookmark

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3Types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/josenarvaezp/gluego/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var commitTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func Test_Advance_FirstRun(t *testing.T) {
	entry := Advance(nil, "helloworld", "jr_1", nil, commitTime)

	assert.Equal(t, &Entry{
		JobName:     "helloworld",
		Version:     1,
		Run:         1,
		Attempt:     0,
		RunID:       "jr_1",
		CommittedAt: commitTime,
	}, entry)
}

func Test_Advance_NewRun(t *testing.T) {
	prev := &Entry{
		JobName: "helloworld",
		Version: 3,
		Run:     2,
		Attempt: 1,
		RunID:   "jr_2",
		State:   map[string]string{"offset": "10", "source": "s3://in"},
	}

	entry := Advance(prev, "helloworld", "jr_3", map[string]string{"offset": "20"}, commitTime)
	assert.Equal(t, 4, entry.Version)
	assert.Equal(t, 3, entry.Run)
	assert.Equal(t, 0, entry.Attempt)
	assert.Equal(t, "jr_2", entry.PreviousRunID)
	assert.Equal(t, map[string]string{"offset": "20", "source": "s3://in"}, entry.State)

	// prev is not modified
	assert.Equal(t, "10", prev.State["offset"])
}

func Test_Advance_SameRun(t *testing.T) {
	prev := &Entry{
		JobName:       "helloworld",
		Version:       2,
		Run:           2,
		RunID:         "jr_2",
		PreviousRunID: "jr_1",
	}

	entry := Advance(prev, "helloworld", "jr_2", nil, commitTime)
	assert.Equal(t, 3, entry.Version)
	assert.Equal(t, 2, entry.Run)
	assert.Equal(t, 1, entry.Attempt)
	assert.Equal(t, "jr_1", entry.PreviousRunID)
	assert.Nil(t, entry.State)
}

func Test_FileStore_HappyPath(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "bookmarks"))

	entry, err := store.Load(ctx, "helloworld")
	require.Nil(t, err)
	assert.Nil(t, entry)

	saved := Advance(nil, "helloworld", "jr_1", map[string]string{"offset": "1"}, commitTime)
	require.Nil(t, store.Save(ctx, saved))

	entry, err = store.Load(ctx, "helloworld")
	require.Nil(t, err)
	assert.Equal(t, saved, entry)

	require.Nil(t, store.Reset(ctx, "helloworld"))
	entry, err = store.Load(ctx, "helloworld")
	require.Nil(t, err)
	assert.Nil(t, entry)

	// resetting twice is fine
	assert.Nil(t, store.Reset(ctx, "helloworld"))
}

func Test_FileStore_UnhappyPath(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	path := store.Path("helloworld")
	require.Nil(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.Nil(t, os.WriteFile(path, []byte("{not json"), 0666))

	_, err := store.Load(ctx, "helloworld")
	assert.NotNil(t, err)
}

func Test_S3Store_Load_HappyPath(t *testing.T) {
	ctx := context.Background()
	saved := Advance(nil, "helloworld", "jr_1", nil, commitTime)
	data, err := json.Marshal(saved)
	require.Nil(t, err)

	expectedInput := &s3.GetObjectInput{
		Bucket: aws.String("job-bookmarks"),
		Key:    aws.String("bookmarks/helloworld/bookmark.json"),
	}

	downloaderMock := new(mocks.ManagerDownloaderAPI)
	downloaderMock.On("Download", ctx, mock.Anything, expectedInput).
		Run(func(args mock.Arguments) {
			w := args.Get(1).(io.WriterAt)
			w.WriteAt(data, 0)
		}).
		Return(int64(len(data)), nil)

	store := &S3Store{
		Bucket:        "job-bookmarks",
		Prefix:        "bookmarks",
		DownloaderAPI: downloaderMock,
	}

	entry, err := store.Load(ctx, "helloworld")
	require.Nil(t, err)
	assert.Equal(t, saved, entry)
}

func Test_S3Store_Load_NotFound(t *testing.T) {
	ctx := context.Background()

	downloaderMock := new(mocks.ManagerDownloaderAPI)
	downloaderMock.On("Download", ctx, mock.Anything, mock.Anything).
		Return(int64(0), &s3Types.NoSuchKey{})

	store := &S3Store{Bucket: "job-bookmarks", DownloaderAPI: downloaderMock}

	entry, err := store.Load(ctx, "helloworld")
	require.Nil(t, err)
	assert.Nil(t, entry)
}

func Test_S3Store_Load_UnhappyPath(t *testing.T) {
	ctx := context.Background()

	downloaderMock := new(mocks.ManagerDownloaderAPI)
	downloaderMock.On("Download", ctx, mock.Anything, mock.Anything).
		Return(int64(0), errors.New("mock error"))

	store := &S3Store{Bucket: "job-bookmarks", DownloaderAPI: downloaderMock}

	_, err := store.Load(ctx, "helloworld")
	assert.EqualError(t, err, "mock error")
}

func Test_S3Store_Save_HappyPath(t *testing.T) {
	ctx := context.Background()
	saved := Advance(nil, "helloworld", "jr_1", nil, commitTime)

	uploaderMock := new(mocks.ManagerUploaderAPI)
	uploaderMock.On("Upload", ctx, mock.MatchedBy(func(input *s3.PutObjectInput) bool {
		body, err := io.ReadAll(input.Body)
		if err != nil {
			return false
		}
		var entry Entry
		if err := json.Unmarshal(body, &entry); err != nil {
			return false
		}
		// the body reader is consumed by the matcher, put it back
		input.Body = bytes.NewReader(body)
		return *input.Bucket == "job-bookmarks" &&
			*input.Key == "helloworld/bookmark.json" &&
			entry.RunID == "jr_1"
	})).Return(&manager.UploadOutput{}, nil)

	store := &S3Store{Bucket: "job-bookmarks", UploaderAPI: uploaderMock}

	require.Nil(t, store.Save(ctx, saved))
	uploaderMock.AssertExpectations(t)
}

func Test_S3Store_Reset_HappyPath(t *testing.T) {
	ctx := context.Background()

	s3Mock := new(mocks.ObjectStoreAPI)
	s3Mock.On("DeleteObject", ctx, &s3.DeleteObjectInput{
		Bucket: aws.String("job-bookmarks"),
		Key:    aws.String("bookmarks/helloworld/bookmark.json"),
	}).Return(&s3.DeleteObjectOutput{}, nil)

	store := &S3Store{Bucket: "job-bookmarks", Prefix: "bookmarks", ObjectStoreAPI: s3Mock}

	require.Nil(t, store.Reset(ctx, "helloworld"))
	s3Mock.AssertExpectations(t)
}
