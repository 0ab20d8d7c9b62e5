// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a transport (HTTP server, worker, ...) that can be started by
// the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
