// Package storage manages the on-disk image folder that product pictures are
// uploaded to and served from.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/palloncino/storage-server-app-01/pkg/logger"
)

// ImageStore writes uploaded images into a managed folder and maps their
// public URLs back to paths for removal. Removal is best effort: the
// database row is the authority, a leftover file is only a log line.
type ImageStore struct {
	dir     string
	baseURL string
}

// NewImageStore creates the folder if needed and returns the store.
func NewImageStore(dir, baseURL string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}
	return &ImageStore{dir: dir, baseURL: baseURL}, nil
}

// Save writes the uploaded file under a uuid-prefixed name and returns the
// public URL it will be served at.
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + "-" + filepath.Base(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return s.baseURL + "/images/" + name, nil
}

// Remove deletes the file a product image URL points to. A missing file is
// logged and skipped; any other failure is logged and returned, but callers
// treat it as non-fatal.
func (s *ImageStore) Remove(imgURL string) error {
	if imgURL == "" {
		return nil
	}
	path := filepath.Join(s.dir, filepath.Base(imgURL))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			logger.Log.Warnf("File not found: %s", path)
			return nil
		}
		logger.Log.Errorf("Error deleting file %s: %v", path, err)
		return err
	}
	logger.Log.Infof("Successfully deleted file: %s", path)
	return nil
}

// Dir returns the managed folder, used by the router to serve /images.
func (s *ImageStore) Dir() string {
	return s.dir
}
