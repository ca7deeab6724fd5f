package bookmark

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// FileStore keeps bookmarks at <dir>/<job>/bookmark.json
type FileStore struct {
	Dir string
}

// NewFileStore creates a store rooted at dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Path returns the file holding the job's bookmark
func (s *FileStore) Path(jobName string) string {
	return filepath.Join(s.Dir, jobName, FileName)
}

// Load implements Store
func (s *FileStore) Load(ctx context.Context, jobName string) (*Entry, error) {
	data, err := os.ReadFile(s.Path(jobName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	return decode(jobName, data)
}

// Save implements Store
func (s *FileStore) Save(ctx context.Context, entry *Entry) error {
	data, err := encode(entry)
	if err != nil {
		return err
	}

	path := s.Path(entry.JobName)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	// readers only ever see a complete bookmark file
	tmp, err := os.CreateTemp(filepath.Dir(path), FileName+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Reset implements Store
func (s *FileStore) Reset(ctx context.Context, jobName string) error {
	err := os.Remove(s.Path(jobName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
