// Package prefab implements the prefab instance synchronization engine.
//
// A master prefab is a JSON document describing one entity as a mapping of
// component-type names to property objects. Live instances in a scene derive
// from a master and may carry local overrides: components the owner attached
// on top of the master, and individual property values the owner edited.
// Synchronization propagates the master definition to every instance while
// preserving those overrides.
//
// # Architecture
//
// The package consists of five parts:
//
//  1. Document: the parsed master prefab definition, re-read from its source
//     on every pass (no caching, so edits on disk are always picked up).
//
//  2. Catalog: a static registry of component types built once at startup.
//     Each entry carries ordered property specs with get/set capability
//     functions and a default constructor. Identity and hierarchy-link
//     pseudo-components are flagged structural and excluded from sync.
//
//  3. Ledger: the per-instance override record. Sync only reads it; the
//     editing UI records overrides when the user edits a property or adds
//     a component.
//
//  4. Engine: the reconciliation algorithm. For every instance of a master
//     it applies the add rule (in master, not on instance, not locally
//     added), the remove rule (not in master, on instance, not locally
//     added) and property sync (master value written unless overridden).
//
//  5. Accessor: generic property get/set driven by the catalog, returning
//     false instead of panicking on type mismatches or bad slot indices.
//
// # Failure scoping
//
// Every failure is scoped to the smallest unit affected: a bad property
// value skips that property, a missing live component skips that component,
// a document load failure skips that instance. The pass always visits every
// instance and returns an aggregated SyncReport instead of aborting.
package prefab
