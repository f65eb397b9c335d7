// Package config provides configuration management for the object storage service.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// config.yaml and environment variables. Defaults come from the `default`
// struct tags of every section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3 bucket, region, endpoint, credentials and key prefix
//   - Log: Logging level and format
//   - Database: optional catalog database connection
//
// # Environment
//
// Nested keys map to upper-case variables joined by underscores:
//
//	STORAGE_BUCKET=assets
//	STORAGE_ACCESS_KEY=...
//	STORAGE_PREFIX=avatars
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
