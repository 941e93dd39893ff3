// Package server runs the quote-sync transports.
//
// [NewServer] builds an HTTP server for the quote API and, when a gRPC
// address is configured, a gRPC server exposing the health service. RunServer
// binds every listener before serving so that a busy port fails startup, then
// blocks until SIGINT, SIGTERM or SIGQUIT. Shutdown stops gRPC first, which
// flips health to NOT_SERVING, and then drains in-flight HTTP requests.
package server
