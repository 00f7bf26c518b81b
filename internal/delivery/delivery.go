// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is one serving surface (HTTP server, background worker) managed by
// the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
