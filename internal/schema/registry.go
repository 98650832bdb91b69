package schema

import (
	"fmt"
)

// ErrSchemaNotFound is returned by Registry.Get for an unknown form id.
var ErrSchemaNotFound = fmt.Errorf("schema not found")

// Registry is the read-only lookup table of form schemas. It is built once at
// process start and passed by reference to consumers; there is no runtime
// registration surface.
type Registry struct {
	byID  map[string]*FormSchema
	order []string
}

// NewRegistry builds a registry from static schema definitions. A duplicate
// schema id or a duplicate field id within one schema is a configuration
// error and fails construction, so misconfiguration surfaces at startup
// rather than at request time.
func NewRegistry(schemas ...*FormSchema) (*Registry, error) {
	r := &Registry{byID: make(map[string]*FormSchema, len(schemas))}

	for _, s := range schemas {
		if s.ID == "" {
			return nil, fmt.Errorf("schema with empty id (title %q)", s.Title)
		}
		if _, exists := r.byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate schema id %q", s.ID)
		}
		if err := checkFieldIDs(s); err != nil {
			return nil, err
		}
		r.byID[s.ID] = s
		r.order = append(r.order, s.ID)
	}

	return r, nil
}

// MustNewRegistry is NewRegistry for static startup wiring; it panics on a
// configuration error.
func MustNewRegistry(schemas ...*FormSchema) *Registry {
	r, err := NewRegistry(schemas...)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the schema for formID or ErrSchemaNotFound.
func (r *Registry) Get(formID string) (*FormSchema, error) {
	s, ok := r.byID[formID]
	if !ok {
		return nil, ErrSchemaNotFound
	}
	return s, nil
}

// List returns all schemas in registration order.
func (r *Registry) List() []*FormSchema {
	out := make([]*FormSchema, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Has reports whether formID is registered.
func (r *Registry) Has(formID string) bool {
	_, ok := r.byID[formID]
	return ok
}

func checkFieldIDs(s *FormSchema) error {
	seen := make(map[string]struct{})
	for i := range s.Sections {
		for _, f := range s.Sections[i].Fields {
			if f.ID == "" {
				return fmt.Errorf("schema %q: field with empty id in section %q", s.ID, s.Sections[i].ID)
			}
			if _, dup := seen[f.ID]; dup {
				return fmt.Errorf("schema %q: duplicate field id %q", s.ID, f.ID)
			}
			seen[f.ID] = struct{}{}
			if f.Include != nil {
				if _, dup := seen[f.Include.ID]; dup {
					return fmt.Errorf("schema %q: duplicate field id %q", s.ID, f.Include.ID)
				}
				seen[f.Include.ID] = struct{}{}
			}
		}
	}
	return nil
}
