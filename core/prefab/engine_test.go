package prefab_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prefab-manager/core/prefab"
	"prefab-manager/core/scene"
	"prefab-manager/feature/components"
)

// mapSource serves master documents from memory, parsing on every call the
// way a file-backed source re-reads on every call.
type mapSource struct {
	docs  map[prefab.Handle][]byte
	loads int
}

func (s *mapSource) Load(_ context.Context, master prefab.Handle) (*prefab.Document, error) {
	s.loads++
	data, ok := s.docs[master]
	if !ok {
		return nil, fmt.Errorf("%s: %w", master, prefab.ErrDocumentNotFound)
	}
	return prefab.ParseDocument(master.String()+".prefab", data)
}

func newTestWorld(t *testing.T) (*prefab.Catalog, *scene.Memory, *mapSource, *prefab.Engine) {
	t.Helper()
	catalog, err := components.NewCatalog()
	require.NoError(t, err)
	store := scene.NewMemory(catalog)
	source := &mapSource{docs: make(map[prefab.Handle][]byte)}
	engine := prefab.NewEngine(source, catalog, zap.NewNop())
	return catalog, store, source, engine
}

const crateDoc = `{
	"Entity": {
		"Render": {"Mesh": "crate.obj", "Color": "blue", "Visible": true, "Materials": ["wood", "metal"]},
		"Audio":  {"Clip": "thud.wav", "Volume": 0.8, "Loop": false}
	}
}`

func TestSync_MasterDrivenAddition(t *testing.T) {
	_, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 1
	source.docs[master] = []byte(crateDoc)

	// The instance starts with Render only; the master also defines Audio.
	id, _ := store.SpawnInstance(master)
	_, ok := store.AddComponent(id, "Render")
	require.True(t, ok)

	report := engine.SynchronizeInstances(context.Background(), master, store)

	require.Len(t, report.Instances, 1)
	ir := report.Instances[0]
	assert.Equal(t, []string{"Audio"}, ir.ComponentsAdded)
	assert.Empty(t, ir.ComponentsRemoved)
	assert.Empty(t, ir.Issues)

	c, ok := store.Component(id, "Audio")
	require.True(t, ok)
	audio := c.(*components.Audio)
	assert.Equal(t, "thud.wav", audio.Clip)
	assert.Equal(t, 0.8, audio.Volume)
	assert.False(t, audio.Loop)

	c, _ = store.Component(id, "Render")
	render := c.(*components.Render)
	assert.Equal(t, "crate.obj", render.Mesh)
	assert.Equal(t, "blue", render.Color)
	assert.Equal(t, []string{"wood", "metal"}, render.Materials)
}

func TestSync_RemovesInheritedComponentDroppedFromMaster(t *testing.T) {
	_, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 2
	source.docs[master] = []byte(`{"Entity": {"Render": {"Mesh": "crate.obj"}}}`)

	// Physics was inherited from an earlier master revision and is not in
	// the ledger, so the remove rule detaches it.
	id, _ := store.SpawnInstance(master)
	store.AddComponent(id, "Render")
	store.AddComponent(id, "Physics")

	report := engine.SynchronizeInstances(context.Background(), master, store)

	require.Len(t, report.Instances, 1)
	assert.Equal(t, []string{"Physics"}, report.Instances[0].ComponentsRemoved)
	assert.False(t, store.HasComponent(id, "Physics"))
	assert.True(t, store.HasComponent(id, "Render"))
}

func TestSync_OwnerAddedComponentSurvives(t *testing.T) {
	_, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 3
	source.docs[master] = []byte(`{"Entity": {"Render": {"Mesh": "crate.obj"}}}`)

	id, ledger := store.SpawnInstance(master)
	store.AddComponent(id, "Render")
	store.AddComponent(id, "Trigger")
	ledger.RecordAddedComponent("Trigger")
	c, _ := store.Component(id, "Trigger")
	c.(*components.Trigger).Event = "open_door"

	report := engine.SynchronizeInstances(context.Background(), master, store)

	// The trigger is absent from the master but owner-added: it survives
	// with its state intact.
	require.Len(t, report.Instances, 1)
	assert.Empty(t, report.Instances[0].ComponentsRemoved)
	c, ok := store.Component(id, "Trigger")
	require.True(t, ok)
	assert.Equal(t, "open_door", c.(*components.Trigger).Event)
}

func TestSync_OverrideSupremacy(t *testing.T) {
	catalog, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 4
	source.docs[master] = []byte(crateDoc)

	id, ledger := store.SpawnInstance(master)
	store.AddComponent(id, "Render")
	store.AddComponent(id, "Audio")

	// The owner painted this instance red; the master says blue.
	c, _ := store.Component(id, "Render")
	c.(*components.Render).Color = "red"
	ref, err := catalog.ResolvePath("Render/Color")
	require.NoError(t, err)
	ledger.RecordOverriddenProperty(ref)

	report := engine.SynchronizeInstances(context.Background(), master, store)

	require.Len(t, report.Instances, 1)
	ir := report.Instances[0]
	assert.NotContains(t, ir.PropertiesUpdated, "Render/Color")
	assert.Contains(t, ir.PropertiesUpdated, "Render/Mesh")

	c, _ = store.Component(id, "Render")
	render := c.(*components.Render)
	assert.Equal(t, "red", render.Color, "overridden value must win over the master")
	assert.Equal(t, "crate.obj", render.Mesh)
}

func TestSync_StructuralExclusion(t *testing.T) {
	_, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 5
	// A master document that illegally carries identity and hierarchy data.
	source.docs[master] = []byte(`{
		"Entity": {
			"Identity":  {"Scene ID": "from-master"},
			"Hierarchy": {"Parent": "from-master"},
			"Render":    {"Mesh": "crate.obj"}
		}
	}`)

	id, _ := store.SpawnInstance(master)
	store.AddComponent(id, "Identity")
	store.AddComponent(id, "Render")
	c, _ := store.Component(id, "Identity")
	c.(*components.Identity).SceneID = "entity-7"

	report := engine.SynchronizeInstances(context.Background(), master, store)

	require.Len(t, report.Instances, 1)
	ir := report.Instances[0]
	assert.NotContains(t, ir.ComponentsAdded, "Hierarchy")
	for _, path := range ir.PropertiesUpdated {
		assert.NotContains(t, path, "Identity/")
		assert.NotContains(t, path, "Hierarchy/")
	}

	c, _ = store.Component(id, "Identity")
	assert.Equal(t, "entity-7", c.(*components.Identity).SceneID)
	assert.False(t, store.HasComponent(id, "Hierarchy"))
}

func TestSync_Idempotence(t *testing.T) {
	_, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 6
	source.docs[master] = []byte(crateDoc)

	id, _ := store.SpawnInstance(master)
	store.AddComponent(id, "Render")

	first := engine.SynchronizeInstances(context.Background(), master, store)
	require.True(t, first.Instances[0].Changed())

	second := engine.SynchronizeInstances(context.Background(), master, store)
	require.Len(t, second.Instances, 1)
	assert.False(t, second.Instances[0].Changed(), "a clean second pass must be a no-op")
	assert.Zero(t, second.Summary.ComponentsAdded)
	assert.Zero(t, second.Summary.ComponentsRemoved)
	assert.Zero(t, second.Summary.PropertiesUpdated)
	assert.Zero(t, second.Summary.Failures)
}

func TestSync_DocumentNotFound(t *testing.T) {
	_, store, _, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 7

	id, _ := store.SpawnInstance(master)
	store.AddComponent(id, "Render")
	c, _ := store.Component(id, "Render")
	c.(*components.Render).Mesh = "untouched.obj"

	report := engine.SynchronizeInstances(context.Background(), master, store)

	require.Len(t, report.Instances, 1)
	ir := report.Instances[0]
	require.Len(t, ir.Issues, 1)
	assert.Equal(t, prefab.IssueDocumentNotFound, ir.Issues[0].Kind)
	assert.False(t, ir.Changed())

	// The instance is left exactly as it was.
	c, _ = store.Component(id, "Render")
	assert.Equal(t, "untouched.obj", c.(*components.Render).Mesh)
}

func TestSync_DocumentParseFailure(t *testing.T) {
	_, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 8
	source.docs[master] = []byte(`{broken`)

	id, _ := store.SpawnInstance(master)
	store.AddComponent(id, "Render")

	report := engine.SynchronizeInstances(context.Background(), master, store)

	require.Len(t, report.Instances, 1)
	ir := report.Instances[0]
	require.Len(t, ir.Issues, 1)
	assert.Equal(t, prefab.IssueDocumentParse, ir.Issues[0].Kind)
	assert.False(t, ir.Changed())
	assert.True(t, store.HasComponent(id, "Render"))
}

func TestSync_PropertyTypeMismatchSkipsPropertyOnly(t *testing.T) {
	_, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 9
	// Volume is declared float but the document carries a string.
	source.docs[master] = []byte(`{
		"Entity": {"Audio": {"Clip": "thud.wav", "Volume": "loud"}}
	}`)

	id, _ := store.SpawnInstance(master)
	store.AddComponent(id, "Audio")
	c, _ := store.Component(id, "Audio")
	c.(*components.Audio).Volume = 0.3

	report := engine.SynchronizeInstances(context.Background(), master, store)

	require.Len(t, report.Instances, 1)
	ir := report.Instances[0]
	require.Len(t, ir.Issues, 1)
	assert.Equal(t, prefab.IssuePropertyTypeMismatch, ir.Issues[0].Kind)
	assert.Equal(t, "Audio/Volume", ir.Issues[0].Path)

	// The sibling property still synchronized; the bad one kept its value.
	c, _ = store.Component(id, "Audio")
	audio := c.(*components.Audio)
	assert.Equal(t, "thud.wav", audio.Clip)
	assert.Equal(t, 0.3, audio.Volume)
}

func TestSync_OnlyMatchingInstancesReconciled(t *testing.T) {
	_, store, source, engine := newTestWorld(t)

	crate := prefab.Handle{}
	crate[0] = 10
	barrel := prefab.Handle{}
	barrel[0] = 11
	source.docs[crate] = []byte(crateDoc)
	source.docs[barrel] = []byte(`{"Entity": {"Physics": {"Mass": 5}}}`)

	crateID, _ := store.SpawnInstance(crate)
	store.AddComponent(crateID, "Render")
	barrelID, _ := store.SpawnInstance(barrel)
	store.Spawn() // plain entity, never an instance

	report := engine.SynchronizeInstances(context.Background(), crate, store)

	require.Len(t, report.Instances, 1)
	assert.Equal(t, crateID.String(), report.Instances[0].Entity)
	assert.False(t, store.HasComponent(barrelID, "Audio"))
}

func TestSync_FreshLoadPerInstance(t *testing.T) {
	_, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 12
	source.docs[master] = []byte(crateDoc)

	for i := 0; i < 3; i++ {
		id, _ := store.SpawnInstance(master)
		store.AddComponent(id, "Render")
	}

	report := engine.SynchronizeInstances(context.Background(), master, store)

	assert.Equal(t, 3, report.Summary.Instances)
	assert.Equal(t, 3, source.loads, "the document must be re-read per instance")
}

func TestSync_InstancesFailIndependently(t *testing.T) {
	catalog, store, source, engine := newTestWorld(t)

	master := prefab.Handle{}
	master[0] = 13
	source.docs[master] = []byte(crateDoc)

	// First instance overrides Color, second is pristine.
	firstID, firstLedger := store.SpawnInstance(master)
	store.AddComponent(firstID, "Render")
	c, _ := store.Component(firstID, "Render")
	c.(*components.Render).Color = "green"
	ref, err := catalog.ResolvePath("Render/Color")
	require.NoError(t, err)
	firstLedger.RecordOverriddenProperty(ref)

	secondID, _ := store.SpawnInstance(master)
	store.AddComponent(secondID, "Render")

	report := engine.SynchronizeInstances(context.Background(), master, store)
	require.Len(t, report.Instances, 2)

	c, _ = store.Component(firstID, "Render")
	assert.Equal(t, "green", c.(*components.Render).Color)
	c, _ = store.Component(secondID, "Render")
	assert.Equal(t, "blue", c.(*components.Render).Color)
}
