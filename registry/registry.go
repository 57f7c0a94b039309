// Package registry provides process-wide singleton tracking for ownership
// domains.
//
// A Registry records which domain keys currently have a live authority. It is
// consulted only when an authority is created or released, never on the
// borrow path, so the lock it holds is constant-time and uncontended in
// steady state.
package registry

import "sync"

// Registry tracks the set of currently registered keys.
// The zero value is ready to use.
type Registry[K comparable] struct {
	mu   sync.Mutex
	live map[K]struct{}
}

// New creates an empty registry.
func New[K comparable]() *Registry[K] {
	return &Registry[K]{}
}

// TryRegister atomically checks whether key is already registered and, if
// not, registers it. It returns true if the key was inserted and false if a
// registration for the key is already live.
func (r *Registry[K]) TryRegister(key K) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live == nil {
		r.live = make(map[K]struct{})
	}
	if _, ok := r.live[key]; ok {
		return false
	}
	r.live[key] = struct{}{}
	return true
}

// Unregister removes key from the registry, making it available for a future
// TryRegister. Removing a key that is not registered is a no-op; this keeps
// teardown idempotent even after a failed partial setup.
func (r *Registry[K]) Unregister(key K) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.live, key)
}

// Registered reports whether key is currently registered.
func (r *Registry[K]) Registered(key K) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.live[key]
	return ok
}

// Len returns the number of registered keys.
func (r *Registry[K]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
