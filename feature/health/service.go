package health

import (
	"context"
	"fmt"

	"object-storage/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Report is the result of a bucket check.
type Report struct {
	Bucket string `json:"bucket"`
	Region string `json:"region"`
	Prefix string `json:"prefix"`
	Exists bool   `json:"exists"`
	Fixed  bool   `json:"fixed,omitempty"`
}

// Service checks that the configured bucket is reachable.
type Service struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewService creates a new health service.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, cfg: cfg, logger: logger}
}

// Check reports whether the bucket exists.
func (s *Service) Check(ctx context.Context) (*Report, error) {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return &Report{
		Bucket: s.cfg.Bucket,
		Region: s.cfg.Region,
		Prefix: s.cfg.Prefix,
		Exists: exists,
	}, nil
}

// Fix creates the bucket when it is missing.
func (s *Service) Fix(ctx context.Context) (*Report, error) {
	report, err := s.Check(ctx)
	if err != nil {
		return nil, err
	}
	if report.Exists {
		return report, nil
	}

	if err := s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
		s.logger.Error("Failed to create bucket", zap.String("bucket", s.cfg.Bucket), zap.Error(err))
		return nil, fmt.Errorf("failed to create bucket %s: %w", s.cfg.Bucket, err)
	}
	s.logger.Info("Created missing bucket", zap.String("bucket", s.cfg.Bucket), zap.String("region", s.cfg.Region))

	report.Exists = true
	report.Fixed = true
	return report, nil
}
