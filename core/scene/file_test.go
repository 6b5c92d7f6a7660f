package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prefab-manager/feature/components"
)

func TestSceneRoundtrip(t *testing.T) {
	catalog := testCatalog(t)
	m := NewMemory(catalog)

	master := uuid.New()
	id, ledger := m.SpawnInstance(master)
	m.AddComponent(id, "Render")
	c, _ := m.Component(id, "Render")
	render := c.(*components.Render)
	render.Mesh = "crate.obj"
	render.Color = "red"
	render.Materials = []string{"wood"}

	ref, err := catalog.ResolvePath("Render/Color")
	require.NoError(t, err)
	ledger.RecordOverriddenProperty(ref)
	ledger.RecordAddedComponent("Trigger")

	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, Save(path, m, catalog))

	loaded, err := Load(path, catalog)
	require.NoError(t, err)

	instances := loaded.Instances()
	require.Len(t, instances, 1)
	assert.Equal(t, id, instances[0].ID)
	assert.Equal(t, master, instances[0].Ledger.Master())
	assert.True(t, instances[0].Ledger.IsPropertyOverridden(ref))
	assert.True(t, instances[0].Ledger.IsComponentLocallyAdded("Trigger"))

	c, ok := loaded.Component(id, "Render")
	require.True(t, ok)
	got := c.(*components.Render)
	assert.Equal(t, "crate.obj", got.Mesh)
	assert.Equal(t, "red", got.Color)
	assert.Equal(t, []string{"wood"}, got.Materials)
}

func TestLoadRejectsBadScenes(t *testing.T) {
	catalog := testCatalog(t)
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	_, err := Load(filepath.Join(dir, "missing.json"), catalog)
	assert.Error(t, err)

	_, err = Load(write("broken.json", `{nope`), catalog)
	assert.Error(t, err)

	_, err = Load(write("badid.json", `{"entities": [{"id": "x", "components": {}}]}`), catalog)
	assert.Error(t, err)

	id := uuid.NewString()
	_, err = Load(write("badtype.json",
		`{"entities": [{"id": "`+id+`", "components": {"NoSuch": {}}}]}`), catalog)
	assert.Error(t, err)

	_, err = Load(write("badvalue.json",
		`{"entities": [{"id": "`+id+`", "components": {"Render": {"Visible": "yes"}}}]}`), catalog)
	assert.Error(t, err)
}
