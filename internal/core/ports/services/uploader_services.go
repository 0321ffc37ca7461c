package services

import "context"

// UploaderSvc is the external file-upload collaborator. The core hands it a
// staged local file path and expects a durable URL back.
type UploaderSvc interface {
	// Upload stores the file at localPath and returns its public URL. Returns
	// apperrors.ErrUploadFailed (wrapped) when no URL could be produced.
	Upload(ctx context.Context, localPath string) (string, error)
}
