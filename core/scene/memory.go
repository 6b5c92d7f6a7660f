package scene

import (
	"github.com/google/uuid"

	"prefab-manager/core/prefab"
)

// entity is one live entity: its optional override ledger and attached
// components keyed by type name.
type entity struct {
	ledger     *prefab.Ledger
	components map[string]any
}

// Memory is an in-memory entity store. It is not safe for concurrent use;
// the synchronization engine assumes exclusive access during a pass.
type Memory struct {
	catalog  *prefab.Catalog
	order    []prefab.EntityID
	entities map[prefab.EntityID]*entity
}

// NewMemory creates an empty store backed by the given catalog.
func NewMemory(catalog *prefab.Catalog) *Memory {
	return &Memory{
		catalog:  catalog,
		entities: make(map[prefab.EntityID]*entity),
	}
}

// Spawn creates a plain entity and returns its ID.
func (m *Memory) Spawn() prefab.EntityID {
	id := uuid.New()
	m.insert(id, nil)
	return id
}

// SpawnInstance creates a prefab instance deriving from the given master
// and returns its ID together with its fresh ledger.
func (m *Memory) SpawnInstance(master prefab.Handle) (prefab.EntityID, *prefab.Ledger) {
	id := uuid.New()
	ledger := prefab.NewLedger(master)
	m.insert(id, ledger)
	return id, ledger
}

func (m *Memory) insert(id prefab.EntityID, ledger *prefab.Ledger) {
	m.entities[id] = &entity{ledger: ledger, components: make(map[string]any)}
	m.order = append(m.order, id)
}

// Entities returns all entity IDs in spawn order.
func (m *Memory) Entities() []prefab.EntityID {
	return append([]prefab.EntityID(nil), m.order...)
}

// Instances returns all prefab instances in spawn order.
func (m *Memory) Instances() []prefab.InstanceRef {
	var out []prefab.InstanceRef
	for _, id := range m.order {
		if e := m.entities[id]; e.ledger != nil {
			out = append(out, prefab.InstanceRef{ID: id, Ledger: e.ledger})
		}
	}
	return out
}

// HasComponent reports whether the entity carries the component.
func (m *Memory) HasComponent(id prefab.EntityID, typeName string) bool {
	e, ok := m.entities[id]
	if !ok {
		return false
	}
	_, ok = e.components[typeName]
	return ok
}

// Component returns the live component attached to the entity.
func (m *Memory) Component(id prefab.EntityID, typeName string) (any, bool) {
	e, ok := m.entities[id]
	if !ok {
		return nil, false
	}
	c, ok := e.components[typeName]
	return c, ok
}

// AddComponent attaches a default-constructed component of the named type.
// It returns false when the entity does not exist or the catalog does not
// know the type.
func (m *Memory) AddComponent(id prefab.EntityID, typeName string) (any, bool) {
	e, ok := m.entities[id]
	if !ok {
		return nil, false
	}
	spec, ok := m.catalog.Lookup(typeName)
	if !ok {
		return nil, false
	}
	c := spec.New()
	e.components[typeName] = c
	return c, true
}

// SetComponent attaches an already constructed component, replacing any
// existing one of the same type. Used by the scene loader and tests.
func (m *Memory) SetComponent(id prefab.EntityID, typeName string, component any) bool {
	e, ok := m.entities[id]
	if !ok {
		return false
	}
	e.components[typeName] = component
	return true
}

// RemoveComponent detaches the component from the entity.
func (m *Memory) RemoveComponent(id prefab.EntityID, typeName string) bool {
	e, ok := m.entities[id]
	if !ok {
		return false
	}
	if _, ok := e.components[typeName]; !ok {
		return false
	}
	delete(e.components, typeName)
	return true
}

// ComponentNames returns the names of the components attached to an entity,
// in catalog order. Unregistered components are not possible; everything in
// the store entered through the catalog or the loader.
func (m *Memory) ComponentNames(id prefab.EntityID) []string {
	e, ok := m.entities[id]
	if !ok {
		return nil
	}
	var out []string
	for _, spec := range m.catalog.Types() {
		if _, ok := e.components[spec.Name]; ok {
			out = append(out, spec.Name)
		}
	}
	return out
}

var _ prefab.Store = (*Memory)(nil)
