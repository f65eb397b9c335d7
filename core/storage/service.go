package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectStorage is the generic key/value blob storage capability.
type ObjectStorage interface {
	// Save uploads content of the declared length under key, overwriting
	// any existing object.
	Save(ctx context.Context, key string, content io.Reader, length int64, contentType string) error
	// Update has the same effect as Save.
	Update(ctx context.Context, key string, content io.Reader, length int64, contentType string) error
	// Load opens the object stored under key. The caller must Close it.
	// Absence is reported by Load itself, not by the first Read.
	Load(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object stored under key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Service implements ObjectStorage on top of an S3-compatible Client.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	client Client
	bucket string
	prefix string
	logger *zap.Logger
}

var _ ObjectStorage = (*Service)(nil)

// NewService creates a storage service for the configured bucket and prefix.
func NewService(client Client, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger,
	}
}

// Bucket returns the bucket the service writes to.
func (s *Service) Bucket() string {
	return s.bucket
}

// Client returns the S3 client the service writes through.
func (s *Service) Client() Client {
	return s.client
}

// Key returns the normalized storage key for a caller supplied key.
func (s *Service) Key(key string) string {
	return NormalizeKey(s.prefix, key)
}

// Save uploads content to the normalized key.
func (s *Service) Save(ctx context.Context, key string, content io.Reader, length int64, contentType string) error {
	return s.put(ctx, "save", key, content, length, contentType)
}

// Update overwrites the object at the normalized key.
func (s *Service) Update(ctx context.Context, key string, content io.Reader, length int64, contentType string) error {
	return s.put(ctx, "update", key, content, length, contentType)
}

func (s *Service) put(ctx context.Context, op, key string, content io.Reader, length int64, contentType string) error {
	fullKey := s.Key(key)
	l := s.logger.With(zap.String("bucket", s.bucket), zap.String("key", fullKey))

	_, err := s.client.PutObject(ctx, s.bucket, fullKey, content, length, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		l.Error("Failed to store object", zap.String("op", op), zap.Error(err))
		return &Error{Kind: KindWrite, Op: op, Bucket: s.bucket, Key: fullKey, Err: err}
	}

	if op == "update" {
		l.Info("Updated object", zap.Int64("size", length), zap.String("content_type", contentType))
	} else {
		l.Info("Stored object", zap.Int64("size", length), zap.String("content_type", contentType))
	}
	return nil
}

// Load opens the object at the normalized key. Against S3 this costs two
// requests: a HEAD to surface a missing key, then the GET. An object deleted
// between the two fails on Read instead of in Load.
func (s *Service) Load(ctx context.Context, key string) (io.ReadCloser, error) {
	fullKey := s.Key(key)
	l := s.logger.With(zap.String("bucket", s.bucket), zap.String("key", fullKey))

	obj, err := s.client.GetObject(ctx, s.bucket, fullKey, minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			l.Warn("Object not found")
			return nil, &Error{Kind: KindNotFound, Op: "load", Bucket: s.bucket, Key: fullKey, Err: err}
		}
		l.Error("Failed to load object", zap.Error(err))
		return nil, &Error{Kind: KindRead, Op: "load", Bucket: s.bucket, Key: fullKey, Err: err}
	}

	l.Debug("Loaded object")
	return obj, nil
}

// Delete removes the object at the normalized key.
func (s *Service) Delete(ctx context.Context, key string) error {
	fullKey := s.Key(key)
	l := s.logger.With(zap.String("bucket", s.bucket), zap.String("key", fullKey))

	if err := s.client.RemoveObject(ctx, s.bucket, fullKey, minio.RemoveObjectOptions{}); err != nil {
		l.Error("Failed to delete object", zap.Error(err))
		return &Error{Kind: KindDelete, Op: "delete", Bucket: s.bucket, Key: fullKey, Err: err}
	}

	l.Info("Deleted object")
	return nil
}
