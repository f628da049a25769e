package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage uploads video payloads to a MinIO (S3-compatible) bucket and
// hands back a public locator URL. The rest of the system treats that URL as
// opaque.
type MinioStorage struct {
	client   *minio.Client
	endpoint string
	bucket   string
	useSSL   bool
}

var _ contract.IFileStorage = (*MinioStorage)(nil)

// NewMinioStorage connects to the object store and ensures the bucket exists.
func NewMinioStorage(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	return &MinioStorage{client: client, endpoint: endpoint, bucket: bucket, useSSL: useSSL}, nil
}

// UploadFile stores the payload under objectName and returns its public URL.
func (s *MinioStorage) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return s.publicURL(objectName), nil
}

func (s *MinioStorage) publicURL(objectName string) string {
	protocol := "http"
	if s.useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.endpoint, s.bucket, objectName)
}
