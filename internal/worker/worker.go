package worker

import (
	"context"
)

// Worker is the interface every background worker implements
type Worker interface {
	// Start runs the worker until the context is cancelled
	Start(ctx context.Context) error

	// Stop signals the worker to stop
	Stop() error

	// Name returns the worker name
	Name() string
}
