package storage

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds the S3 client and the storage service from configuration.
// It returns ErrDisabled when the storage is switched off.
func New(cfg Config, logger *zap.Logger) (*Service, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return NewService(client, cfg, logger), nil
}

// Provide returns existing when one is already available and builds a new
// service from cfg otherwise.
func Provide(existing ObjectStorage, cfg Config, logger *zap.Logger) (ObjectStorage, error) {
	if existing != nil {
		return existing, nil
	}
	svc, err := New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return svc, nil
}
