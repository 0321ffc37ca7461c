// Package storage provides the media upload collaborator. The core hands it a
// staged local file and gets a durable URL back.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vidtube/vidtube_backend/internal/apperrors"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// DiskUploader moves staged upload files into a media directory served at a
// public base URL.
type DiskUploader struct {
	mediaDir string
	baseURL  string
}

// NewDiskUploader creates the media directory if needed and returns the uploader.
func NewDiskUploader(mediaDir, baseURL string) (*DiskUploader, error) {
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory %s: %w", mediaDir, err)
	}
	return &DiskUploader{
		mediaDir: mediaDir,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

var _ portssvc.UploaderSvc = (*DiskUploader)(nil)

// Upload copies the staged file into the media directory under a fresh name and
// returns its public URL. Any failure to produce a URL is an upload failure.
func (u *DiskUploader) Upload(ctx context.Context, localPath string) (string, error) {
	src, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read staged file: %s", apperrors.ErrUploadFailed, err.Error())
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(localPath)
	destPath := filepath.Join(u.mediaDir, name)

	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("%w: cannot create media file: %s", apperrors.ErrUploadFailed, err.Error())
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("%w: copy failed: %s", apperrors.ErrUploadFailed, err.Error())
	}

	// The staged temp file is no longer needed; best effort cleanup.
	_ = os.Remove(localPath)

	return u.baseURL + "/" + name, nil
}
