package consul

import (
	"context"
	"fmt"

	consul "github.com/hashicorp/consul/api"

	"github.com/abhishek622/moviereviews/pkg/discovery"
)

// Registry defines a Consul-based service registry lookup.
type Registry struct {
	client *consul.Client
}

// NewRegistry creates a new Consul-based service registry instance.
func NewRegistry(addr string) (*Registry, error) {
	config := consul.DefaultConfig()
	config.Address = addr
	client, err := consul.NewClient(config)
	if err != nil {
		return nil, err
	}
	return &Registry{client: client}, nil
}

// ServiceAddresses returns the list of addresses of passing instances of the given service.
func (r *Registry) ServiceAddresses(ctx context.Context, serviceName string) ([]string, error) {
	entries, _, err := r.client.Health().Service(serviceName, "", true, (&consul.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, discovery.ErrNotFound
	}
	var res []string
	for _, e := range entries {
		addr := e.Service.Address
		if addr == "" {
			addr = e.Node.Address
		}
		res = append(res, fmt.Sprintf("%s:%d", addr, e.Service.Port))
	}
	return res, nil
}
