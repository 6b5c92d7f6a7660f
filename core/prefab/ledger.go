package prefab

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Ledger is the per-instance override record: which components the instance
// owner attached on top of the master, and which individual properties they
// edited. The sync engine only reads the ledger; the editing UI records
// entries when the user adds a component or edits a property.
//
// Entries are never pruned automatically. When sync removes a component its
// override entries stay in the ledger, and a stale override reattaches
// silently if the component is re-added later; Prune exists for the editing
// UI to drop entries explicitly.
type Ledger struct {
	master     Handle
	added      map[string]struct{}
	overridden map[PropRef]struct{}
}

// NewLedger creates an empty ledger for an instance of the given master.
func NewLedger(master Handle) *Ledger {
	return &Ledger{
		master:     master,
		added:      make(map[string]struct{}),
		overridden: make(map[PropRef]struct{}),
	}
}

// Master returns the handle of the master prefab this instance derives from.
func (l *Ledger) Master() Handle { return l.master }

// RecordAddedComponent marks a component type as locally attached by the
// instance owner. Such components survive synchronization even when absent
// from the master.
func (l *Ledger) RecordAddedComponent(typeName string) {
	l.added[typeName] = struct{}{}
}

// RecordOverriddenProperty marks a property as locally edited. Its live
// value is never overwritten by synchronization, regardless of the master.
func (l *Ledger) RecordOverriddenProperty(ref PropRef) {
	l.overridden[ref] = struct{}{}
}

// IsComponentLocallyAdded reports whether the owner attached the component.
func (l *Ledger) IsComponentLocallyAdded(typeName string) bool {
	_, ok := l.added[typeName]
	return ok
}

// IsPropertyOverridden reports whether the owner edited the property.
func (l *Ledger) IsPropertyOverridden(ref PropRef) bool {
	_, ok := l.overridden[ref]
	return ok
}

// Prune drops all override entries belonging to a component type. The sync
// engine never calls this; it is for the editing UI when the user detaches
// a component deliberately.
func (l *Ledger) Prune(typeName string) {
	delete(l.added, typeName)
	for ref := range l.overridden {
		if ref.Component == typeName {
			delete(l.overridden, ref)
		}
	}
}

// AddedComponents returns the locally added component names, sorted.
func (l *Ledger) AddedComponents() []string {
	out := make([]string, 0, len(l.added))
	for name := range l.added {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LedgerState is the persistence form of a ledger: the master handle and
// string property paths as the wire format.
type LedgerState struct {
	Master     string   `json:"master"`
	Components []string `json:"components,omitempty"`
	Properties []string `json:"properties,omitempty"`
}

// State snapshots the ledger for persistence. Property refs are rendered
// back to "Component/Property" paths through the catalog.
func (l *Ledger) State(c *Catalog) (LedgerState, error) {
	state := LedgerState{
		Master:     l.master.String(),
		Components: l.AddedComponents(),
	}
	for ref := range l.overridden {
		path, err := c.FormatPath(ref)
		if err != nil {
			return LedgerState{}, err
		}
		state.Properties = append(state.Properties, path)
	}
	sort.Strings(state.Properties)
	return state, nil
}

// LedgerFromState rebuilds a ledger from its persisted form, resolving
// string paths to (component, property index) pairs through the catalog.
func LedgerFromState(state LedgerState, c *Catalog) (*Ledger, error) {
	master, err := uuid.Parse(state.Master)
	if err != nil {
		return nil, fmt.Errorf("ledger master handle %q: %w", state.Master, err)
	}
	l := NewLedger(master)
	for _, name := range state.Components {
		l.RecordAddedComponent(name)
	}
	for _, path := range state.Properties {
		ref, err := c.ResolvePath(path)
		if err != nil {
			return nil, err
		}
		l.RecordOverriddenProperty(ref)
	}
	return l, nil
}
