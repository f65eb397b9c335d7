// Package server holds the HTTP server configuration.
//
// While the cmd package handles the server startup, this package defines the
// settings it reads: listen port, API key and the request body limit that
// caps uploads through the HTTP surface.
package server
