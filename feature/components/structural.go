package components

import "prefab-manager/core/prefab"

// Identity marks an entity with its scene-wide ID. It exists in every
// serialized entity but is never synchronized.
type Identity struct {
	SceneID string
}

// Hierarchy links an entity into the scene graph. Structural linkage is
// never added, removed or overwritten by synchronization, even when the
// master document carries it.
type Hierarchy struct {
	Parent   string
	Children []string
}

func identitySpec() prefab.ComponentSpec {
	return prefab.ComponentSpec{
		Name:       "Identity",
		Structural: true,
		New:        func() any { return &Identity{} },
		Properties: []prefab.PropertySpec{
			{
				Name: "Scene ID", Kind: prefab.KindString, Structural: true,
				Get: func(c any) any {
					if i, ok := c.(*Identity); ok {
						return i.SceneID
					}
					return nil
				},
				Set: func(c any, v any) bool {
					i, ok := c.(*Identity)
					if !ok {
						return false
					}
					s, ok := v.(string)
					if !ok {
						return false
					}
					i.SceneID = s
					return true
				},
			},
		},
	}
}

func hierarchySpec() prefab.ComponentSpec {
	return prefab.ComponentSpec{
		Name:       "Hierarchy",
		Structural: true,
		New:        func() any { return &Hierarchy{} },
		Properties: []prefab.PropertySpec{
			{
				Name: "Parent", Kind: prefab.KindString, Structural: true,
				Get: func(c any) any {
					if h, ok := c.(*Hierarchy); ok {
						return h.Parent
					}
					return nil
				},
				Set: func(c any, v any) bool {
					h, ok := c.(*Hierarchy)
					if !ok {
						return false
					}
					s, ok := v.(string)
					if !ok {
						return false
					}
					h.Parent = s
					return true
				},
			},
			{
				Name: "Children", Kind: prefab.KindStringList, Structural: true,
				Get: func(c any) any {
					if h, ok := c.(*Hierarchy); ok {
						return h.Children
					}
					return nil
				},
				Set: func(c any, v any) bool {
					h, ok := c.(*Hierarchy)
					if !ok {
						return false
					}
					l, ok := v.([]string)
					if !ok {
						return false
					}
					h.Children = l
					return true
				},
			},
		},
	}
}
