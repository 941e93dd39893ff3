// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Document is the synchronized document the client edits.
// docsync.Controller implements it.
type Document interface {
	Init(ctx context.Context)
	Close()
}

// UI blocks while the user works with the document.
type UI interface {
	Run(ctx context.Context) error
}

// Lifecycle reacts to process termination. triggers.Set implements it.
type Lifecycle interface {
	Watch(ctx context.Context, onExit func())
	Unload(ctx context.Context) error
	Wait()
}
