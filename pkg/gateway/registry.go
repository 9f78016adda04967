package gateway

import "sync"

// Registry maps instance ids to their connected gateway clients. All
// concurrent requests targeting an instance share its single client;
// runId filtering on the subscriber side keeps them isolated.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]Conn
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]Conn)}
}

// Get returns the client for an instance, if one is connected.
func (r *Registry) Get(instanceID string) (Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[instanceID]
	return c, ok
}

// Put registers (or replaces) the client for an instance.
func (r *Registry) Put(instanceID string, c Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[instanceID] = c
}

// InstanceIDs returns the ids of all connected instances.
func (r *Registry) InstanceIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of connected instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Remove drops the client for an instance. Returns the removed client
// so the caller can close it.
func (r *Registry) Remove(instanceID string) (Conn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[instanceID]
	if ok {
		delete(r.clients, instanceID)
	}
	return c, ok
}
