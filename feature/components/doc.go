// Package components defines the component types known to the editor and
// registers them into the prefab catalog.
//
// Registration order is the enumeration order the sync engine walks, so it
// is fixed here and stable across a run. Two reserved pseudo-components are
// registered as structural: Identity (the scene ID marker) and Hierarchy
// (parent/child linkage). They are identity and hierarchy metadata, not data
// to be overridden, and synchronization never touches them.
package components
