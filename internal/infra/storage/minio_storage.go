// Package storage provides object storage adapters behind the
// service.ObjectStorage interface. The bucket is private; all reads go
// through presigned URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"skyvault/config"
	"skyvault/internal/domain/service"
)

// minioStorage implements service.ObjectStorage on a MinIO or any
// S3-compatible endpoint via minio-go.
type minioStorage struct {
	client *minio.Client
	bucket string
	logger *slog.Logger

	ensureOnce sync.Once
	ensureErr  error
}

// NewMinioStorage is the constructor for minioStorage.
func NewMinioStorage(cfg *config.StorageConfig, logger *slog.Logger) (service.ObjectStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create minio client")
	}

	return &minioStorage{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// ensureBucket lazily creates the bucket on first use so local
// development does not need a provisioning step.
func (s *minioStorage) ensureBucket(ctx context.Context) error {
	s.ensureOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.ensureErr = err

			return
		}
		if exists {
			return
		}
		s.ensureErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	})

	if s.ensureErr != nil {
		return errors.Wrapf(s.ensureErr, "ensure bucket %q", s.bucket)
	}

	return nil
}

// Put streams an object under the given key.
func (s *minioStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrap(err, "put object")
	}

	return nil
}

// Delete removes an object. Deleting a missing object is not an error.
func (s *minioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "delete object")
	}

	return nil
}

// Presign returns a time-limited URL granting read access to one object.
func (s *minioStorage) Presign(ctx context.Context, req service.PresignRequest) (string, error) {
	ttl := req.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	params := url.Values{}
	if req.Disposition != "" {
		params.Set("response-content-disposition", contentDisposition(req))
	}

	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, req.Key, ttl, params)
	if err != nil {
		return "", errors.Wrap(err, "presign get object")
	}

	return presigned.String(), nil
}

// contentDisposition builds the response override for a presign request.
func contentDisposition(req service.PresignRequest) string {
	if req.Disposition != service.DispositionAttachment {
		return string(service.DispositionInline)
	}

	name := req.FileName
	if name == "" {
		name = path.Base(req.Key)
	}

	return fmt.Sprintf(`attachment; filename="%s"`, name)
}
