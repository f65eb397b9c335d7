// Package objects exposes the object storage over HTTP and keeps an optional
// metadata catalog.
//
// # HTTP Endpoints
//
//   - PUT /objects/{key} : Save the request body (Content-Type header is stored).
//   - POST /objects/{key} : Update, same effect as save.
//   - GET /objects/{key} : Load, streamed.
//   - DELETE /objects/{key} : Delete, idempotent.
//   - GET /catalog/{key} : Size, content type and update time from the catalog.
//
// # Catalog
//
// When a database is configured, every successful save or update upserts a
// Record (bucket, normalized key, content type, size) and every delete removes
// it. Catalog failures are logged and never fail the storage operation; the
// object store remains the source of truth.
//
// # Status Codes
//
// Storage errors map to 404 for not found and 500 for the other kinds; the
// response body carries the error kind.
package objects
