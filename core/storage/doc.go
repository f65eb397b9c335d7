// Package storage provides a generic key/value blob storage backed by an
// S3-compatible object store.
//
// It wraps the MinIO Go client, which speaks to AWS S3 as well as self-hosted
// MinIO (or any other S3-compatible) instances. Transport, retries inside the
// SDK and connection pooling stay with the client; this package only builds
// the client, prefixes keys and translates failures.
//
// # Client Interface
//
// The Client interface narrows the MinIO client to the calls the service
// needs, making it easy to mock storage interactions (see core/storage/mocks).
//
// # Keys
//
// Every caller supplied key is passed through NormalizeKey with the configured
// prefix: "avatars" + "/u/1.png" becomes "avatars/u/1.png".
//
// # Operations
//
//   - Save / Update: put-object semantics, overwrite without existence checks.
//   - Load: returns a stream the caller must close.
//   - Delete: idempotent, deleting an absent key succeeds.
//
// # Errors
//
// All failures are returned as *Error carrying a Kind (write failure, read
// failure, not found, delete failure) and the original cause. Use errors.Is
// with ErrWrite, ErrRead, ErrNotFound or ErrDelete to branch on them.
//
// # Usage
//
//	svc, err := storage.New(cfg.Storage, logger)
//	err = svc.Save(ctx, "u/1.png", file, size, "image/png")
//	rc, err := svc.Load(ctx, "u/1.png")
//	defer rc.Close()
package storage
