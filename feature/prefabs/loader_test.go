package prefabs

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prefab-manager/core/prefab"
	"prefab-manager/core/scene"
	"prefab-manager/feature/components"
)

func TestLoader(t *testing.T) {
	catalog, err := components.NewCatalog()
	require.NoError(t, err)
	store := scene.NewMemory(catalog)
	source := byteSource{}
	engine := prefab.NewEngine(source, catalog, zap.NewNop())

	// Pass nil history; the feature works without persistence.
	feature := NewFeature(engine, store, catalog, nil, zap.NewNop())

	assert.Equal(t, "prefabs", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
