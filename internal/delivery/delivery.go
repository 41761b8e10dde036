// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application. Each implementation runs
// its own listener; main starts them all and fx stops them on shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
