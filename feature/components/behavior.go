package components

import "prefab-manager/core/prefab"

// Physics gives an entity a rigid body.
type Physics struct {
	Mass      float64
	Kinematic bool
}

// Script binds a script source to an entity.
type Script struct {
	Source  string
	Enabled bool
}

// Trigger fires an event when something enters its radius. In the test
// scenes it is the typical owner-added component that never appears in a
// master prefab.
type Trigger struct {
	Event  string
	Radius float64
	Once   bool
}

func physicsSpec() prefab.ComponentSpec {
	return prefab.ComponentSpec{
		Name: "Physics",
		New:  func() any { return &Physics{Mass: 1} },
		Properties: []prefab.PropertySpec{
			{
				Name: "Mass", Kind: prefab.KindFloat,
				Get: func(c any) any {
					if p, ok := c.(*Physics); ok {
						return p.Mass
					}
					return nil
				},
				Set: func(c any, v any) bool {
					p, ok := c.(*Physics)
					if !ok {
						return false
					}
					f, ok := v.(float64)
					if !ok {
						return false
					}
					p.Mass = f
					return true
				},
			},
			{
				Name: "Kinematic", Kind: prefab.KindBool,
				Get: func(c any) any {
					if p, ok := c.(*Physics); ok {
						return p.Kinematic
					}
					return nil
				},
				Set: func(c any, v any) bool {
					p, ok := c.(*Physics)
					if !ok {
						return false
					}
					b, ok := v.(bool)
					if !ok {
						return false
					}
					p.Kinematic = b
					return true
				},
			},
		},
	}
}

func scriptSpec() prefab.ComponentSpec {
	return prefab.ComponentSpec{
		Name: "Script",
		New:  func() any { return &Script{Enabled: true} },
		Properties: []prefab.PropertySpec{
			{
				Name: "Source", Kind: prefab.KindString,
				Get: func(c any) any {
					if s, ok := c.(*Script); ok {
						return s.Source
					}
					return nil
				},
				Set: func(c any, v any) bool {
					sc, ok := c.(*Script)
					if !ok {
						return false
					}
					s, ok := v.(string)
					if !ok {
						return false
					}
					sc.Source = s
					return true
				},
			},
			{
				Name: "Enabled", Kind: prefab.KindBool,
				Get: func(c any) any {
					if s, ok := c.(*Script); ok {
						return s.Enabled
					}
					return nil
				},
				Set: func(c any, v any) bool {
					sc, ok := c.(*Script)
					if !ok {
						return false
					}
					b, ok := v.(bool)
					if !ok {
						return false
					}
					sc.Enabled = b
					return true
				},
			},
		},
	}
}

func triggerSpec() prefab.ComponentSpec {
	return prefab.ComponentSpec{
		Name: "Trigger",
		New:  func() any { return &Trigger{} },
		Properties: []prefab.PropertySpec{
			{
				Name: "Event", Kind: prefab.KindString,
				Get: func(c any) any {
					if t, ok := c.(*Trigger); ok {
						return t.Event
					}
					return nil
				},
				Set: func(c any, v any) bool {
					t, ok := c.(*Trigger)
					if !ok {
						return false
					}
					s, ok := v.(string)
					if !ok {
						return false
					}
					t.Event = s
					return true
				},
			},
			{
				Name: "Radius", Kind: prefab.KindFloat,
				Get: func(c any) any {
					if t, ok := c.(*Trigger); ok {
						return t.Radius
					}
					return nil
				},
				Set: func(c any, v any) bool {
					t, ok := c.(*Trigger)
					if !ok {
						return false
					}
					f, ok := v.(float64)
					if !ok {
						return false
					}
					t.Radius = f
					return true
				},
			},
			{
				Name: "Once", Kind: prefab.KindBool,
				Get: func(c any) any {
					if t, ok := c.(*Trigger); ok {
						return t.Once
					}
					return nil
				},
				Set: func(c any, v any) bool {
					t, ok := c.(*Trigger)
					if !ok {
						return false
					}
					b, ok := v.(bool)
					if !ok {
						return false
					}
					t.Once = b
					return true
				},
			},
		},
	}
}
