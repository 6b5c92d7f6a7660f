package components

import "prefab-manager/core/prefab"

// Audio attaches a sound emitter to an entity.
type Audio struct {
	Clip   string
	Volume float64
	Loop   bool
}

func audioSpec() prefab.ComponentSpec {
	return prefab.ComponentSpec{
		Name: "Audio",
		New:  func() any { return &Audio{Volume: 1} },
		Properties: []prefab.PropertySpec{
			{
				Name: "Clip", Kind: prefab.KindString,
				Get: func(c any) any {
					if a, ok := c.(*Audio); ok {
						return a.Clip
					}
					return nil
				},
				Set: func(c any, v any) bool {
					a, ok := c.(*Audio)
					if !ok {
						return false
					}
					s, ok := v.(string)
					if !ok {
						return false
					}
					a.Clip = s
					return true
				},
			},
			{
				Name: "Volume", Kind: prefab.KindFloat,
				Get: func(c any) any {
					if a, ok := c.(*Audio); ok {
						return a.Volume
					}
					return nil
				},
				Set: func(c any, v any) bool {
					a, ok := c.(*Audio)
					if !ok {
						return false
					}
					f, ok := v.(float64)
					if !ok {
						return false
					}
					a.Volume = f
					return true
				},
			},
			{
				Name: "Loop", Kind: prefab.KindBool,
				Get: func(c any) any {
					if a, ok := c.(*Audio); ok {
						return a.Loop
					}
					return nil
				},
				Set: func(c any, v any) bool {
					a, ok := c.(*Audio)
					if !ok {
						return false
					}
					b, ok := v.(bool)
					if !ok {
						return false
					}
					a.Loop = b
					return true
				},
			},
		},
	}
}
