package discovery

import (
	"context"
	"errors"
)

// Registry defines a lookup of backend service addresses.
type Registry interface {
	// ServiceAddresses returns the list of addresses of active instances of the given service.
	ServiceAddresses(ctx context.Context, serviceName string) ([]string, error)
}

// ErrNotFound is returned when no service addresses are found.
var ErrNotFound = errors.New("no service addresses found")
