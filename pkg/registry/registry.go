// Package registry holds the ordered catalogue of maintenance operations
// and resolves which subset a run executes. Declaration order encodes
// execution dependency: the network-dependent update check registers
// first, the connectivity-severing network reset registers last, and
// selection filters never reorder.
package registry

import (
	"sync"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// Registry is a thread-safe, insertion-ordered catalogue of operations.
type Registry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]types.Operation
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byID: make(map[string]types.Operation),
	}
}

// Register adds an operation. Empty and duplicate ids are rejected with
// structured errors so a bad catalogue fails loudly at startup.
func (r *Registry) Register(op types.Operation) error {
	desc := op.Descriptor()
	if desc.ID == "" {
		return errors.New(errors.ErrInvalidInput, "operation id cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[desc.ID]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "operation %q is already registered", desc.ID)
	}

	r.order = append(r.order, desc.ID)
	r.byID[desc.ID] = op
	return nil
}

// Get retrieves an operation by id.
func (r *Registry) Get(id string) (types.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.byID[id]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownOperation, "unknown operation %q", id).
			WithDetail("operation", id)
	}
	return op, nil
}

// Has checks if an operation id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok
}

// Count returns the number of registered operations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// List returns all descriptors in declaration order.
func (r *Registry) List() []types.OperationDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descs := make([]types.OperationDescriptor, 0, len(r.order))
	for _, id := range r.order {
		descs = append(descs, r.byID[id].Descriptor())
	}
	return descs
}

// ResolveSelection computes the ordered subset of operation ids the run
// executes. The result is always a strict subsequence of declaration
// order, never contains duplicates, may be empty, and is idempotent for
// the same inputs.
func (r *Registry) ResolveSelection(cfg types.RunConfiguration) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cfg.SingleOperation != "" {
		if _, ok := r.byID[cfg.SingleOperation]; !ok {
			return nil, errors.Newf(errors.ErrUnknownOperation, "unknown operation %q", cfg.SingleOperation).
				WithDetail("operation", cfg.SingleOperation)
		}
		return []string{cfg.SingleOperation}, nil
	}

	selection := make([]string, 0, len(r.order))
	for _, id := range r.order {
		if cfg.RiskFilter != nil && r.byID[id].Descriptor().Risk != *cfg.RiskFilter {
			continue
		}
		if cfg.Skips(id) {
			continue
		}
		selection = append(selection, id)
	}
	return selection, nil
}
