// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface started by the application runtime.
type Delivery interface {
	Serve(ctx context.Context) error
}
