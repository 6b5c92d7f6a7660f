package prefab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// widget is a minimal component used by the registry tests.
type widget struct {
	Label string
	Count int
}

func widgetSpec() ComponentSpec {
	return ComponentSpec{
		Name: "Widget",
		New:  func() any { return &widget{} },
		Properties: []PropertySpec{
			{
				Name: "Label", Kind: KindString,
				Get: func(c any) any { return c.(*widget).Label },
				Set: func(c any, v any) bool {
					s, ok := v.(string)
					if !ok {
						return false
					}
					c.(*widget).Label = s
					return true
				},
			},
			{
				Name: "Count", Kind: KindInt,
				Get: func(c any) any { return c.(*widget).Count },
				Set: func(c any, v any) bool {
					i, ok := v.(int)
					if !ok {
						return false
					}
					c.(*widget).Count = i
					return true
				},
			},
		},
	}
}

func TestCatalogRegisterAndLookup(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Register(widgetSpec()))

	spec, ok := c.Lookup("Widget")
	require.True(t, ok)
	assert.Equal(t, "Widget", spec.Name)

	prop, idx, ok := spec.Property("Count")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, KindInt, prop.Kind)

	_, _, ok = spec.Property("Missing")
	assert.False(t, ok)

	_, ok = c.Lookup("Gadget")
	assert.False(t, ok)
}

func TestCatalogRegistrationOrder(t *testing.T) {
	c := NewCatalog()
	names := []string{"C", "A", "B"}
	for _, n := range names {
		spec := widgetSpec()
		spec.Name = n
		require.NoError(t, c.Register(spec))
	}

	var got []string
	for _, spec := range c.Types() {
		got = append(got, spec.Name)
	}
	// Enumeration follows registration order, not lexical order.
	assert.Equal(t, names, got)
}

func TestCatalogRegisterRejectsInvalidSpecs(t *testing.T) {
	c := NewCatalog()

	unnamed := widgetSpec()
	unnamed.Name = ""
	assert.Error(t, c.Register(unnamed))

	noCtor := widgetSpec()
	noCtor.New = nil
	assert.Error(t, c.Register(noCtor))

	dupProp := widgetSpec()
	dupProp.Properties = append(dupProp.Properties, dupProp.Properties[0])
	assert.Error(t, c.Register(dupProp))

	require.NoError(t, c.Register(widgetSpec()))
	assert.Error(t, c.Register(widgetSpec()), "duplicate type registration")
}

func TestResolvePath(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Register(widgetSpec()))

	ref, err := c.ResolvePath("Widget/Count")
	require.NoError(t, err)
	assert.Equal(t, PropRef{Component: "Widget", Index: 1}, ref)

	_, err = c.ResolvePath("Widget")
	assert.Error(t, err, "no separator")
	_, err = c.ResolvePath("Gadget/Count")
	assert.Error(t, err, "unknown component")
	_, err = c.ResolvePath("Widget/Weight")
	assert.Error(t, err, "unknown property")
}

func TestFormatPath(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Register(widgetSpec()))

	path, err := c.FormatPath(PropRef{Component: "Widget", Index: 0})
	require.NoError(t, err)
	assert.Equal(t, "Widget/Label", path)

	_, err = c.FormatPath(PropRef{Component: "Gadget", Index: 0})
	assert.Error(t, err)
	_, err = c.FormatPath(PropRef{Component: "Widget", Index: 7})
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "float_list", KindFloatList.String())
	assert.Equal(t, "unknown", Kind(99).String())

	assert.True(t, KindStringList.Sequence())
	assert.True(t, KindFloatList.Sequence())
	assert.False(t, KindBool.Sequence())
}
