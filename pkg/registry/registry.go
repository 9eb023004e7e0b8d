// Package registry manages the closed set of gadget types available to an
// exploration's authoring surface.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/schema"
)

// Registry manages the available gadget types.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]schema.GadgetSpec
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[string]schema.GadgetSpec),
	}
}

// Register adds a gadget type to the registry.
// If a type with the same ID exists, it is overwritten.
func (r *Registry) Register(spec schema.GadgetSpec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs[spec.TypeID] = spec
}

// Get looks up a gadget type by ID.
// Returns domain.ErrUnknownGadgetType if the ID is not registered.
func (r *Registry) Get(typeID string) (schema.GadgetSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.specs[typeID]
	if !ok {
		return schema.GadgetSpec{}, fmt.Errorf("%w: %s", domain.ErrUnknownGadgetType, typeID)
	}
	return spec, nil
}

// Has reports whether the given type ID is registered.
func (r *Registry) Has(typeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.specs[typeID]
	return ok
}

// IDs returns all registered type IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.specs))
	for id := range r.specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultArgs returns one entry per declared customization argument of the
// type, initialized to its default value. Values are deep-copied: live
// edits to the returned map must never alias the spec template.
func (r *Registry) DefaultArgs(typeID string) (map[string]any, error) {
	spec, err := r.Get(typeID)
	if err != nil {
		return nil, err
	}

	args := make(map[string]any, len(spec.CustomizationArgSpecs))
	for _, argSpec := range spec.CustomizationArgSpecs {
		args[argSpec.Name] = copyValue(argSpec.DefaultValue)
	}
	return args, nil
}

// copyValue deep-copies the JSON/YAML-shaped values used as argument
// defaults (maps, slices, scalars).
func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return val
	}
}
