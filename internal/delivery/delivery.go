// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running transport endpoint, such as an HTTP server.
type Delivery interface {
	// Serve blocks while the endpoint accepts traffic.
	Serve(ctx context.Context) error
}
