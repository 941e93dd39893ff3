// Package http implements the HTTP transport layer of the quote server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as guest sessions, request tracing, access
// logging and response compression are handled in this package before
// requests are delegated to the service layer.
//
// The quote resource uses HTTP conditional requests for optimistic
// concurrency: the current version token travels in the ETag header, reads
// honour If-None-Match and writes require If-Match.
package http
