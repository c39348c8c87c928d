// Package handler implements the HTTP entry point.
//
// Every request, whatever its method or path, goes through HTTPHandler.
// The response is always an empty body with 200, 404 or 500.
package handler
