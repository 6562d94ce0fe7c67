package storage

import "context"

// StorageService defines the interface for image blob storage operations.
type StorageService interface {
	// UploadFile uploads the file at localFilePath into destFolder and
	// returns its public delivery URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes the blob behind a previously returned delivery URL.
	DeleteFile(ctx context.Context, fileURL string) error
}
