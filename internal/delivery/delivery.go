// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a long-running server collected into the fx "deliveries"
// group and started once the dependency graph is built.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
