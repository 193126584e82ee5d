package schema

import "sort"

// Schema holds the built types of one module.
type Schema struct {
	Module  string
	Tagging Tagging

	types map[string]*Type
	order []string
}

// NewSchema creates an empty Schema for the named module.
func NewSchema(module string, tagging Tagging) *Schema {
	return &Schema{
		Module:  module,
		Tagging: tagging,
		types:   make(map[string]*Type),
	}
}

// AddType adds a type to the schema. It returns false if a type with the
// same name is already present.
func (s *Schema) AddType(t *Type) bool {
	if _, ok := s.types[t.Name]; ok {
		return false
	}
	t.Module = s.Module
	s.types[t.Name] = t
	s.order = append(s.order, t.Name)
	return true
}

// GetType retrieves a type by name.
// Returns nil if not found.
func (s *Schema) GetType(name string) *Type {
	return s.types[name]
}

// Types returns the types in definition order.
func (s *Schema) Types() []*Type {
	list := make([]*Type, len(s.order))
	for i, name := range s.order {
		list[i] = s.types[name]
	}
	return list
}

// Names returns the type names sorted alphabetically.
func (s *Schema) Names() []string {
	names := append([]string(nil), s.order...)
	sort.Strings(names)
	return names
}

// Len returns the number of types.
func (s *Schema) Len() int {
	return len(s.order)
}
