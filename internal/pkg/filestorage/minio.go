package filestorage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/erenyalcin/campushare/internal/pkg/logger"
)

// MinIOConfig holds the object storage connection settings.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
}

// MinIOStorage saves files to an S3-compatible object store.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage creates the client and ensures the bucket exists.
func NewMinIOStorage(ctx context.Context, cfg MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info().Str("bucket", cfg.Bucket).Msg("Storage bucket created")
	}

	return &MinIOStorage{client: client, bucket: cfg.Bucket}, nil
}

// SaveFile streams the uploaded file into the bucket under subPath and
// returns the object key as the accessible reference.
func (ms *MinIOStorage) SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	objectName := uuid.New().String() + ext
	if subPath != "" {
		objectName = strings.TrimRight(subPath, "/") + "/" + objectName
	}

	contentType := fileHeader.Header.Get("Content-Type")
	_, err = ms.client.PutObject(ctx, ms.bucket, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store object %s: %w", objectName, err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("object", objectName).Msg("File stored in bucket")
	return objectName, nil
}

// DeleteFile removes an object from the bucket. Removing a missing object
// is not an error on S3-compatible stores.
func (ms *MinIOStorage) DeleteFile(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	if err := ms.client.RemoveObject(ctx, ms.bucket, ref, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s: %w", ref, err)
	}
	return nil
}
