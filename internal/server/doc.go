// Package server runs the application's HTTP server.
//
// It owns the server lifecycle: listening, serving the router built by the
// http handler, signal handling and graceful shutdown bounded by the
// configured shutdown timeout.
package server
