package storage

import "errors"

// Config holds configuration for the S3-compatible storage backend.
type Config struct {
	// Enabled toggles construction of the storage service.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Endpoint overrides the default service endpoint (e.g. https://minio.local:9000).
	// An empty endpoint targets AWS S3.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL is used when the endpoint carries no scheme.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the name of the bucket objects are stored in.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// Prefix namespaces every key inside the bucket. Empty means keys are used as-is.
	Prefix string `mapstructure:"prefix" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate reports the first missing required setting.
func (c Config) Validate() error {
	switch {
	case c.Bucket == "":
		return errors.New("storage: bucket is required")
	case c.Region == "":
		return errors.New("storage: region is required")
	case c.AccessKey == "":
		return errors.New("storage: access key is required")
	case c.SecretKey == "":
		return errors.New("storage: secret key is required")
	}
	return nil
}
