package storage

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	awscreds "github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"skyvault/config"
	"skyvault/internal/domain/service"
)

// s3Storage implements service.ObjectStorage on AWS S3 via the AWS SDK.
type s3Storage struct {
	client *s3.S3
	bucket string
	logger *slog.Logger
}

// NewS3Storage is the constructor for s3Storage. A custom endpoint with
// path-style addressing is supported for S3-compatible stores.
func NewS3Storage(cfg *config.StorageConfig, logger *slog.Logger) (service.ObjectStorage, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: awscreds.NewStaticCredentials(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
	}

	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if !cfg.UseSSL {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AWS session")
	}

	return &s3Storage{
		client: s3.New(sess),
		bucket: cfg.Bucket,
		logger: logger,
	}, nil
}

// Put streams an object under the given key. The SDK requires a
// ReadSeeker, so aws.ReadSeekCloser wraps the stream.
func (s *s3Storage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          aws.ReadSeekCloser(body),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return errors.Wrap(err, "put object")
	}

	return nil
}

// Delete removes an object. Deleting a missing object is not an error.
func (s *s3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrap(err, "delete object")
	}

	return nil
}

// Presign returns a time-limited URL granting read access to one object.
func (s *s3Storage) Presign(_ context.Context, req service.PresignRequest) (string, error) {
	ttl := req.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(req.Key),
	}
	if req.Disposition != "" {
		input.ResponseContentDisposition = aws.String(contentDisposition(req))
	}

	request, _ := s.client.GetObjectRequest(input)
	signed, err := request.Presign(ttl)
	if err != nil {
		return "", errors.Wrap(err, "presign get object")
	}

	return signed, nil
}
