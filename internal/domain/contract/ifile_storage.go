package contract

import (
	"context"
	"io"
)

// IFileStorage defines the interface for the video upload collaborator. The
// core only persists the returned locator URL; it performs no validation of it.
type IFileStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}
