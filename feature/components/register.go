package components

import "prefab-manager/core/prefab"

// Register populates a catalog with every component type the editor knows.
// Call it once at startup; the catalog is read-only afterwards.
func Register(c *prefab.Catalog) error {
	specs := []prefab.ComponentSpec{
		identitySpec(),
		hierarchySpec(),
		transformSpec(),
		renderSpec(),
		audioSpec(),
		physicsSpec(),
		scriptSpec(),
		triggerSpec(),
	}
	for _, spec := range specs {
		if err := c.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

// NewCatalog builds and populates a fresh catalog.
func NewCatalog() (*prefab.Catalog, error) {
	c := prefab.NewCatalog()
	if err := Register(c); err != nil {
		return nil, err
	}
	return c, nil
}
