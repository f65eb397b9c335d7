// Package health verifies that the configured bucket is reachable.
//
// # HTTP Endpoints
//
//   - GET /health : 200 when the bucket exists, 503 when it is missing.
//   - POST /health/fix : creates the bucket in the configured region when missing.
//
// Only the GET route is meant to be public; the fix route writes to the store
// and stays behind the API key.
package health
