// Package delivery defines the inbound transports of the service.
package delivery

import "context"

// Delivery is an inbound server. Serve blocks until the server stops or
// fails; shutdown is driven through the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
