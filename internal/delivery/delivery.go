// Package delivery defines the contract shared by every transport that serves the application.
package delivery

import "context"

// Delivery is a long-running server started by fx after all dependencies are built.
type Delivery interface {
	Serve(ctx context.Context) error
}
