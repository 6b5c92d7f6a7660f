package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"prefab-manager/core/prefab"
)

// fileEntity is one entity in the persisted scene document.
type fileEntity struct {
	ID         string                    `json:"id"`
	Ledger     *prefab.LedgerState       `json:"ledger,omitempty"`
	Components map[string]map[string]any `json:"components"`
}

// fileScene is the persisted scene document.
type fileScene struct {
	Entities []fileEntity `json:"entities"`
}

// Load reads a scene document and builds an in-memory store. Component
// property values are decoded through the catalog; an unknown component
// type or an incompatible value fails the load, a scene is all-or-nothing.
func Load(path string, catalog *prefab.Catalog) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}

	var doc fileScene
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}

	m := NewMemory(catalog)
	for _, fe := range doc.Entities {
		id, err := uuid.Parse(fe.ID)
		if err != nil {
			return nil, fmt.Errorf("scene %s: entity id %q: %w", path, fe.ID, err)
		}

		var ledger *prefab.Ledger
		if fe.Ledger != nil {
			ledger, err = prefab.LedgerFromState(*fe.Ledger, catalog)
			if err != nil {
				return nil, fmt.Errorf("scene %s: entity %s: %w", path, fe.ID, err)
			}
		}
		m.insert(id, ledger)

		for typeName, props := range fe.Components {
			spec, ok := catalog.Lookup(typeName)
			if !ok {
				return nil, fmt.Errorf("scene %s: entity %s: unknown component type %s", path, fe.ID, typeName)
			}
			component := spec.New()
			for propName, raw := range props {
				p, _, ok := spec.Property(propName)
				if !ok {
					return nil, fmt.Errorf("scene %s: entity %s: unknown property %s/%s", path, fe.ID, typeName, propName)
				}
				value, ok := prefab.DecodeValue(p.Kind, raw)
				if !ok {
					return nil, fmt.Errorf("scene %s: entity %s: property %s/%s: incompatible value %T", path, fe.ID, typeName, propName, raw)
				}
				if !p.Set(component, value) {
					return nil, fmt.Errorf("scene %s: entity %s: property %s/%s: write rejected", path, fe.ID, typeName, propName)
				}
			}
			m.SetComponent(id, typeName, component)
		}
	}

	return m, nil
}

// Save writes the store back to a scene document. Entities keep their spawn
// order; components and properties are emitted in catalog order.
func Save(path string, m *Memory, catalog *prefab.Catalog) error {
	doc := fileScene{Entities: make([]fileEntity, 0, len(m.order))}

	for _, id := range m.order {
		e := m.entities[id]
		fe := fileEntity{
			ID:         id.String(),
			Components: make(map[string]map[string]any, len(e.components)),
		}

		if e.ledger != nil {
			state, err := e.ledger.State(catalog)
			if err != nil {
				return fmt.Errorf("scene %s: entity %s: %w", path, fe.ID, err)
			}
			fe.Ledger = &state
		}

		for _, spec := range catalog.Types() {
			component, ok := e.components[spec.Name]
			if !ok {
				continue
			}
			props := make(map[string]any, len(spec.Properties))
			for i := range spec.Properties {
				props[spec.Properties[i].Name] = spec.Properties[i].Get(component)
			}
			fe.Components[spec.Name] = props
		}

		doc.Entities = append(doc.Entities, fe)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scene %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	return nil
}
