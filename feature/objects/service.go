package objects

import (
	"context"
	"errors"
	"io"
	"strings"

	"object-storage/core/storage"

	"go.uber.org/zap"
)

// DefaultContentType is used when the caller does not name one.
const DefaultContentType = "application/octet-stream"

// ErrEmptyKey is returned for an empty object key.
var ErrEmptyKey = errors.New("object key is required")

// Service combines the object store with the optional catalog.
type Service struct {
	store   storage.ObjectStorage
	bucket  string
	prefix  string
	catalog *Catalog
	logger  *zap.Logger
}

// NewService creates a new objects service. catalog may be nil.
func NewService(store storage.ObjectStorage, cfg storage.Config, catalog *Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		bucket:  cfg.Bucket,
		prefix:  cfg.Prefix,
		catalog: catalog,
		logger:  logger,
	}
}

// Key returns the normalized storage key.
func (s *Service) Key(key string) string {
	return storage.NormalizeKey(s.prefix, key)
}

// Save stores content and records its metadata.
func (s *Service) Save(ctx context.Context, key string, content io.Reader, length int64, contentType string) (*Record, error) {
	return s.write(ctx, key, content, length, contentType, s.store.Save)
}

// Update overwrites content and records its metadata.
func (s *Service) Update(ctx context.Context, key string, content io.Reader, length int64, contentType string) (*Record, error) {
	return s.write(ctx, key, content, length, contentType, s.store.Update)
}

type writeFunc func(ctx context.Context, key string, content io.Reader, length int64, contentType string) error

func (s *Service) write(ctx context.Context, key string, content io.Reader, length int64, contentType string, put writeFunc) (*Record, error) {
	if strings.TrimPrefix(key, "/") == "" {
		return nil, ErrEmptyKey
	}
	if contentType == "" {
		contentType = DefaultContentType
	}

	if err := put(ctx, key, content, length, contentType); err != nil {
		return nil, err
	}

	rec := &Record{
		Bucket:      s.bucket,
		Key:         s.Key(key),
		ContentType: contentType,
		Size:        length,
	}
	if s.catalog != nil {
		if err := s.catalog.Put(ctx, rec); err != nil {
			s.logger.Warn("Failed to record object metadata",
				zap.String("bucket", rec.Bucket), zap.String("key", rec.Key), zap.Error(err))
		}
	}
	return rec, nil
}

// Load opens the object and resolves its content type from the catalog.
func (s *Service) Load(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if strings.TrimPrefix(key, "/") == "" {
		return nil, "", ErrEmptyKey
	}

	rc, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, "", err
	}

	contentType := DefaultContentType
	if s.catalog != nil {
		if rec, err := s.catalog.Get(ctx, s.bucket, s.Key(key)); err == nil && rec.ContentType != "" {
			contentType = rec.ContentType
		} else if err != nil && !errors.Is(err, ErrNotCataloged) {
			s.logger.Warn("Failed to read object metadata",
				zap.String("bucket", s.bucket), zap.String("key", s.Key(key)), zap.Error(err))
		}
	}
	return rc, contentType, nil
}

// Delete removes the object and its catalog record.
func (s *Service) Delete(ctx context.Context, key string) error {
	if strings.TrimPrefix(key, "/") == "" {
		return ErrEmptyKey
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return err
	}

	if s.catalog != nil {
		if err := s.catalog.Remove(ctx, s.bucket, s.Key(key)); err != nil {
			s.logger.Warn("Failed to remove object metadata",
				zap.String("bucket", s.bucket), zap.String("key", s.Key(key)), zap.Error(err))
		}
	}
	return nil
}

// Describe returns the catalog record of an object.
func (s *Service) Describe(ctx context.Context, key string) (*Record, error) {
	if s.catalog == nil {
		return nil, ErrCatalogDisabled
	}
	if strings.TrimPrefix(key, "/") == "" {
		return nil, ErrEmptyKey
	}
	return s.catalog.Get(ctx, s.bucket, s.Key(key))
}
