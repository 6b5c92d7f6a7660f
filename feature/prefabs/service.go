package prefabs

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"prefab-manager/core/prefab"
	"prefab-manager/feature/history"
)

// Service orchestrates synchronization passes over one scene.
type Service struct {
	engine  *prefab.Engine
	store   prefab.Store
	catalog *prefab.Catalog
	history *history.Store
	logger  *zap.Logger

	// One pass at a time; the engine does not support re-entry.
	mu sync.Mutex
}

// NewService creates the service. The history store may be nil, in which
// case passes are not persisted.
func NewService(engine *prefab.Engine, store prefab.Store, catalog *prefab.Catalog, hist *history.Store, logger *zap.Logger) *Service {
	return &Service{
		engine:  engine,
		store:   store,
		catalog: catalog,
		history: hist,
		logger:  logger,
	}
}

// Sync runs one synchronization pass for the given master and records it in
// the history when a store is configured. A history failure does not fail
// the pass; the report is the authoritative result.
func (s *Service) Sync(ctx context.Context, master prefab.Handle) *prefab.SyncReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := s.engine.SynchronizeInstances(ctx, master, s.store)

	if s.history != nil {
		if _, err := s.history.Append(ctx, report); err != nil {
			s.logger.Warn("failed to persist sync record", zap.Error(err))
		}
	}

	return report
}

// Reports returns the most recent persisted passes.
func (s *Service) Reports(ctx context.Context, limit int) ([]history.Record, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, limit)
}

// CatalogEntry describes one registered component type for the UI.
type CatalogEntry struct {
	Name       string         `json:"name"`
	Structural bool           `json:"structural"`
	Properties []CatalogField `json:"properties"`
}

// CatalogField describes one property of a component type.
type CatalogField struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Structural bool   `json:"structural,omitempty"`
}

// Catalog returns the registered component types in enumeration order.
func (s *Service) Catalog() []CatalogEntry {
	var out []CatalogEntry
	for _, spec := range s.catalog.Types() {
		entry := CatalogEntry{Name: spec.Name, Structural: spec.Structural}
		for _, p := range spec.Properties {
			entry.Properties = append(entry.Properties, CatalogField{
				Name:       p.Name,
				Kind:       p.Kind.String(),
				Structural: p.Structural,
			})
		}
		out = append(out, entry)
	}
	return out
}
