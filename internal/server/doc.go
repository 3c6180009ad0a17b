// Package server runs the gateway's HTTP transport.
//
// It owns the server lifecycle: listening, signal handling and graceful
// shutdown with a bounded drain period.
package server
