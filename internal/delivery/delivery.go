// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application, such as the HTTP API.
// Implementations block inside Serve until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
