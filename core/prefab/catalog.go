package prefab

import (
	"fmt"
	"strings"
)

// Kind is the declared type of a component property.
type Kind uint8

const (
	// KindString is a single string value.
	KindString Kind = iota
	// KindInt is a whole number.
	KindInt
	// KindFloat is a floating-point number.
	KindFloat
	// KindBool is a boolean flag.
	KindBool
	// KindStringList is an ordered sequence of strings (e.g. material slots).
	KindStringList
	// KindFloatList is an ordered sequence of numbers (e.g. a vector).
	KindFloatList
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStringList:
		return "string_list"
	case KindFloatList:
		return "float_list"
	default:
		return "unknown"
	}
}

// Sequence reports whether the kind holds indexed slots.
func (k Kind) Sequence() bool {
	return k == KindStringList || k == KindFloatList
}

// PropertySpec describes one property of a component type and carries the
// capability functions used to read and write it on a live component.
type PropertySpec struct {
	// Name is the property name as it appears in prefab documents.
	Name string
	// Kind is the declared value type.
	Kind Kind
	// Structural marks identity/hierarchy metadata that sync never touches.
	Structural bool
	// Get reads the property value from a live component.
	Get func(component any) any
	// Set writes a value to a live component. It returns false when the
	// value's runtime type is incompatible with the declared kind.
	Set func(component any, value any) bool
}

// ComponentSpec describes one registered component type.
type ComponentSpec struct {
	// Name is the component-type name as it appears in prefab documents.
	Name string
	// Structural marks the reserved pseudo-components (scene identity,
	// parent/child linkage) that sync must never add, remove or overwrite.
	Structural bool
	// Properties is the ordered property list the diff walks.
	Properties []PropertySpec
	// New default-constructs a live component of this type.
	New func() any

	index map[string]int
}

// Property returns the spec and index of the named property.
func (s *ComponentSpec) Property(name string) (*PropertySpec, int, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, 0, false
	}
	return &s.Properties[i], i, true
}

// PropRef is a resolved structural path: a component-type name plus a
// property index into that type's ordered property list. String paths are
// the wire format; lookups use the resolved pair.
type PropRef struct {
	Component string
	Index     int
}

// Catalog is the process-wide registry of component types. It is populated
// once at startup and read-only afterwards; synchronization shares it across
// instances without copying.
type Catalog struct {
	order []string
	specs map[string]*ComponentSpec
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{specs: make(map[string]*ComponentSpec)}
}

// Register adds a component type. Registration order is the enumeration
// order for synchronization and is stable across a run.
func (c *Catalog) Register(spec ComponentSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("component spec has no name")
	}
	if _, exists := c.specs[spec.Name]; exists {
		return fmt.Errorf("component type %s already registered", spec.Name)
	}
	if spec.New == nil {
		return fmt.Errorf("component type %s has no constructor", spec.Name)
	}

	s := spec
	s.index = make(map[string]int, len(s.Properties))
	for i, p := range s.Properties {
		if _, dup := s.index[p.Name]; dup {
			return fmt.Errorf("component type %s: duplicate property %s", s.Name, p.Name)
		}
		s.index[p.Name] = i
	}

	c.specs[s.Name] = &s
	c.order = append(c.order, s.Name)
	return nil
}

// Types returns all registered component specs in registration order.
func (c *Catalog) Types() []*ComponentSpec {
	out := make([]*ComponentSpec, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.specs[name])
	}
	return out
}

// Lookup returns the spec for a component-type name.
func (c *Catalog) Lookup(name string) (*ComponentSpec, bool) {
	s, ok := c.specs[name]
	return s, ok
}

// ResolvePath resolves a "Component/Property" string path to a PropRef.
func (c *Catalog) ResolvePath(path string) (PropRef, error) {
	comp, prop, ok := strings.Cut(path, "/")
	if !ok {
		return PropRef{}, fmt.Errorf("malformed property path %q", path)
	}
	spec, ok := c.specs[comp]
	if !ok {
		return PropRef{}, fmt.Errorf("property path %q: unknown component type", path)
	}
	_, i, ok := spec.Property(prop)
	if !ok {
		return PropRef{}, fmt.Errorf("property path %q: unknown property", path)
	}
	return PropRef{Component: comp, Index: i}, nil
}

// FormatPath renders a PropRef back to its "Component/Property" wire form.
func (c *Catalog) FormatPath(ref PropRef) (string, error) {
	spec, ok := c.specs[ref.Component]
	if !ok {
		return "", fmt.Errorf("unknown component type %s", ref.Component)
	}
	if ref.Index < 0 || ref.Index >= len(spec.Properties) {
		return "", fmt.Errorf("component type %s has no property index %d", ref.Component, ref.Index)
	}
	return ref.Component + "/" + spec.Properties[ref.Index].Name, nil
}
