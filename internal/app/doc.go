// Package app provides application wiring and lifecycle management.
//
// The App type connects the trigger loader, command runner and HTTP handler
// and manages:
// - HTTP server lifecycle
// - Graceful shutdown on SIGINT and SIGTERM
package app
