// Package delivery defines the contract shared by the application's
// serving surfaces.
package delivery

import "context"

// Delivery is a long-running serving surface started by the application
// lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
