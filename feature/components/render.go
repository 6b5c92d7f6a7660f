package components

import "prefab-manager/core/prefab"

// Render draws an entity: mesh reference, tint color and indexed material
// slots. Materials is sequence-valued; individual slots can be written
// through the accessor's SetElement.
type Render struct {
	Mesh      string
	Color     string
	Visible   bool
	Materials []string
}

func renderSpec() prefab.ComponentSpec {
	return prefab.ComponentSpec{
		Name: "Render",
		New:  func() any { return &Render{Visible: true} },
		Properties: []prefab.PropertySpec{
			{
				Name: "Mesh", Kind: prefab.KindString,
				Get: func(c any) any {
					if r, ok := c.(*Render); ok {
						return r.Mesh
					}
					return nil
				},
				Set: func(c any, v any) bool {
					r, ok := c.(*Render)
					if !ok {
						return false
					}
					s, ok := v.(string)
					if !ok {
						return false
					}
					r.Mesh = s
					return true
				},
			},
			{
				Name: "Color", Kind: prefab.KindString,
				Get: func(c any) any {
					if r, ok := c.(*Render); ok {
						return r.Color
					}
					return nil
				},
				Set: func(c any, v any) bool {
					r, ok := c.(*Render)
					if !ok {
						return false
					}
					s, ok := v.(string)
					if !ok {
						return false
					}
					r.Color = s
					return true
				},
			},
			{
				Name: "Visible", Kind: prefab.KindBool,
				Get: func(c any) any {
					if r, ok := c.(*Render); ok {
						return r.Visible
					}
					return nil
				},
				Set: func(c any, v any) bool {
					r, ok := c.(*Render)
					if !ok {
						return false
					}
					b, ok := v.(bool)
					if !ok {
						return false
					}
					r.Visible = b
					return true
				},
			},
			{
				Name: "Materials", Kind: prefab.KindStringList,
				Get: func(c any) any {
					if r, ok := c.(*Render); ok {
						return r.Materials
					}
					return nil
				},
				Set: func(c any, v any) bool {
					r, ok := c.(*Render)
					if !ok {
						return false
					}
					l, ok := v.([]string)
					if !ok {
						return false
					}
					r.Materials = l
					return true
				},
			},
		},
	}
}
