package schema

import (
	"fmt"
	"sort"

	"github.com/patrickmn/go-cache"
	"go.uber.org/multierr"
)

// Registry indexes the types of several modules by their qualified name,
// "Module.Type". It is safe for concurrent use.
type Registry struct {
	types *cache.Cache
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: cache.New(cache.NoExpiration, 0)}
}

// QualifiedName returns the registry key of t.
func QualifiedName(t *Type) string {
	if t.Module == "" {
		return t.Name
	}
	return t.Module + "." + t.Name
}

// Register adds every type of s. Names already registered are reported
// and keep their first type.
func (r *Registry) Register(s *Schema) error {
	var err error
	for _, t := range s.Types() {
		name := QualifiedName(t)
		if addErr := r.types.Add(name, t, cache.NoExpiration); addErr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrDuplicateType, name))
		}
	}
	return err
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	v, ok := r.types.Get(name)
	if !ok {
		return nil, false
	}
	return v.(*Type), true
}

// Names returns the registered names sorted alphabetically.
func (r *Registry) Names() []string {
	items := r.types.Items()
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return r.types.ItemCount()
}
