package static

import (
	"context"
	"strings"
	"sync"

	"github.com/abhishek622/moviereviews/pkg/discovery"
)

// Registry defines a fixed, configuration driven service registry.
type Registry struct {
	sync.RWMutex
	serviceAddrs map[string][]string
}

// NewRegistry creates a registry serving the given addresses for serviceName.
func NewRegistry(serviceName string, addrs ...string) *Registry {
	r := &Registry{serviceAddrs: map[string][]string{}}
	for _, a := range addrs {
		r.Add(serviceName, a)
	}
	return r
}

// Add appends an address for the given service. Blank addresses are ignored.
func (r *Registry) Add(serviceName string, addr string) {
	addr = strings.TrimRight(strings.TrimSpace(addr), "/")
	if addr == "" {
		return
	}
	r.Lock()
	defer r.Unlock()
	r.serviceAddrs[serviceName] = append(r.serviceAddrs[serviceName], addr)
}

// ServiceAddresses returns the configured addresses of the given service.
func (r *Registry) ServiceAddresses(_ context.Context, serviceName string) ([]string, error) {
	r.RLock()
	defer r.RUnlock()
	addrs := r.serviceAddrs[serviceName]
	if len(addrs) == 0 {
		return nil, discovery.ErrNotFound
	}
	res := make([]string, len(addrs))
	copy(res, addrs)
	return res, nil
}
