package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts every configured transport and blocks until a stop
	// signal arrives or ctx is cancelled, then shuts them down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown(ctx context.Context)
}
