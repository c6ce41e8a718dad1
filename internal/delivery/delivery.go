// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a transport surface (HTTP server, worker, ...) that can be
// started by the application runner. Implementations register their own
// shutdown with the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
