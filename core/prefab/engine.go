package prefab

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Engine runs synchronization passes: it propagates a master prefab
// definition to every instance deriving from it, preserving each instance's
// locally authored overrides.
//
// A pass is single-threaded and runs to completion within one call on the
// thread that owns the scene. Concurrent invocation is not supported; the
// caller must not re-enter while a prior pass is in flight.
type Engine struct {
	source  Source
	catalog *Catalog
	logger  *zap.Logger
}

// NewEngine creates a synchronization engine. The catalog must be fully
// populated before the first pass and is treated as read-only.
func NewEngine(source Source, catalog *Catalog, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{source: source, catalog: catalog, logger: logger}
}

// SynchronizeInstances reconciles every instance of the given master in the
// store's iteration order. The master document is re-read from its source
// per instance, so a load failure on one instance never blocks its
// siblings. All failures are scoped and aggregated into the report; the
// pass itself never fails.
func (e *Engine) SynchronizeInstances(ctx context.Context, master Handle, store Store) *SyncReport {
	report := &SyncReport{Master: master.String()}

	for _, inst := range store.Instances() {
		if inst.Ledger == nil || inst.Ledger.Master() != master {
			continue
		}
		report.addInstance(e.reconcileInstance(ctx, master, store, inst))
	}

	e.logger.Info("synchronization pass complete",
		zap.String("master", report.Master),
		zap.Int("instances", report.Summary.Instances),
		zap.Int("components_added", report.Summary.ComponentsAdded),
		zap.Int("components_removed", report.Summary.ComponentsRemoved),
		zap.Int("properties_updated", report.Summary.PropertiesUpdated),
		zap.Int("failures", report.Summary.Failures),
	)

	return report
}

// reconcileInstance applies the add rule, remove rule and property sync to
// one instance. The master document is loaded fresh; on a load failure the
// instance is left untouched and the failure recorded.
func (e *Engine) reconcileInstance(ctx context.Context, master Handle, store Store, inst InstanceRef) InstanceReport {
	ir := InstanceReport{Entity: inst.ID.String()}

	doc, err := e.source.Load(ctx, master)
	if err != nil {
		ir.Issues = append(ir.Issues, loadIssue(err))
		e.logger.Warn("master document load failed, instance skipped",
			zap.String("master", master.String()),
			zap.String("entity", ir.Entity),
			zap.Error(err),
		)
		return ir
	}

	for _, spec := range e.catalog.Types() {
		// Identity and hierarchy-link pseudo-components are metadata,
		// never data to synchronize.
		if spec.Structural {
			continue
		}

		inMaster := doc.HasComponent(spec.Name)
		onInstance := store.HasComponent(inst.ID, spec.Name)
		locallyAdded := inst.Ledger.IsComponentLocallyAdded(spec.Name)

		switch {
		case inMaster && !onInstance && !locallyAdded:
			if _, ok := store.AddComponent(inst.ID, spec.Name); !ok {
				ir.Issues = append(ir.Issues, Issue{
					Kind:   IssueComponentLookup,
					Path:   spec.Name,
					Reason: "store refused to attach component",
				})
				continue
			}
			ir.ComponentsAdded = append(ir.ComponentsAdded, spec.Name)
			onInstance = true

		case !inMaster && onInstance && !locallyAdded:
			// Owner-added components always survive; this one was
			// inherited and dropped from the master.
			store.RemoveComponent(inst.ID, spec.Name)
			ir.ComponentsRemoved = append(ir.ComponentsRemoved, spec.Name)
			onInstance = false
		}

		if inMaster {
			e.syncProperties(doc, store, inst, spec, &ir)
		}
	}

	return ir
}

// syncProperties overwrites every non-overridden property of one component
// from the master document. A bad value skips that property only.
func (e *Engine) syncProperties(doc *Document, store Store, inst InstanceRef, spec *ComponentSpec, ir *InstanceReport) {
	component, ok := store.Component(inst.ID, spec.Name)
	if !ok {
		ir.Issues = append(ir.Issues, Issue{
			Kind:   IssueComponentLookup,
			Path:   spec.Name,
			Reason: "entity does not carry component",
		})
		e.logger.Warn("entity does not carry component, skipping",
			zap.String("entity", ir.Entity),
			zap.String("component", spec.Name),
		)
		return
	}

	for i := range spec.Properties {
		prop := &spec.Properties[i]
		if prop.Structural {
			continue
		}
		if inst.Ledger.IsPropertyOverridden(PropRef{Component: spec.Name, Index: i}) {
			continue
		}

		raw, ok := doc.Value(spec.Name, prop.Name)
		if !ok {
			continue
		}
		path := spec.Name + "/" + prop.Name

		value, ok := DecodeValue(prop.Kind, raw)
		if !ok {
			ir.Issues = append(ir.Issues, Issue{
				Kind:   IssuePropertyTypeMismatch,
				Path:   path,
				Reason: fmt.Sprintf("document value %T is incompatible with %s", raw, prop.Kind),
			})
			continue
		}

		// Writing an unchanged value would make a clean second pass
		// report spurious updates.
		if valuesEqual(prop.Get(component), value) {
			continue
		}

		if !prop.Set(component, value) {
			ir.Issues = append(ir.Issues, Issue{
				Kind:   IssuePropertyWrite,
				Path:   path,
				Reason: "accessor rejected value",
			})
			continue
		}
		ir.PropertiesUpdated = append(ir.PropertiesUpdated, path)
	}
}

// loadIssue classifies a document load failure.
func loadIssue(err error) Issue {
	kind := IssueDocumentParse
	var parseErr *ParseError
	if errors.Is(err, ErrDocumentNotFound) {
		kind = IssueDocumentNotFound
	} else if !errors.As(err, &parseErr) {
		// I/O failures other than not-found abort the instance the same
		// way a missing document does.
		kind = IssueDocumentNotFound
	}
	return Issue{Kind: kind, Reason: err.Error()}
}
