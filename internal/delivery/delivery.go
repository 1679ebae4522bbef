// Package delivery defines the serving contract shared by all binaries.
package delivery

import "context"

// Delivery is a transport server that blocks in Serve until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
