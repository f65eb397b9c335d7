// Package database handles the optional catalog database connection.
//
// It provides a wrapper around GORM to configure MySQL (or SQLite, for local
// setups) connections based on the application's configuration. The catalog
// records blob metadata next to the object store; the service works without it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
