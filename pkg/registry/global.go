package registry

import "github.com/costaindustries-source/mac-cleaner/pkg/types"

// defaultRegistry is the process-wide catalogue that concrete operations
// register into from their package's init.
var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// MustRegister adds an operation to the default registry and panics on a
// catalogue bug (empty or duplicate id). Only called from init.
func MustRegister(op types.Operation) {
	if err := defaultRegistry.Register(op); err != nil {
		panic(err)
	}
}
