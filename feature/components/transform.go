package components

import "prefab-manager/core/prefab"

// Transform places an entity in the scene.
type Transform struct {
	Position []float64
	Rotation []float64
	Scale    []float64
}

func transformSpec() prefab.ComponentSpec {
	return prefab.ComponentSpec{
		Name: "Transform",
		New: func() any {
			return &Transform{
				Position: []float64{0, 0, 0},
				Rotation: []float64{0, 0, 0},
				Scale:    []float64{1, 1, 1},
			}
		},
		Properties: []prefab.PropertySpec{
			floatListProp("Position", func(c any) *Transform {
				t, _ := c.(*Transform)
				return t
			}, func(t *Transform) *[]float64 { return &t.Position }),
			floatListProp("Rotation", func(c any) *Transform {
				t, _ := c.(*Transform)
				return t
			}, func(t *Transform) *[]float64 { return &t.Rotation }),
			floatListProp("Scale", func(c any) *Transform {
				t, _ := c.(*Transform)
				return t
			}, func(t *Transform) *[]float64 { return &t.Scale }),
		},
	}
}

// floatListProp builds a float-sequence property backed by a Transform field.
func floatListProp(name string, cast func(any) *Transform, field func(*Transform) *[]float64) prefab.PropertySpec {
	return prefab.PropertySpec{
		Name: name, Kind: prefab.KindFloatList,
		Get: func(c any) any {
			t := cast(c)
			if t == nil {
				return nil
			}
			return *field(t)
		},
		Set: func(c any, v any) bool {
			t := cast(c)
			if t == nil {
				return false
			}
			l, ok := v.([]float64)
			if !ok {
				return false
			}
			*field(t) = l
			return true
		},
	}
}
