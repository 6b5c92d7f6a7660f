package prefab

// IssueKind classifies a non-fatal synchronization failure.
type IssueKind string

const (
	// IssueDocumentNotFound means the master document is missing; the
	// affected instance was left untouched.
	IssueDocumentNotFound IssueKind = "document_not_found"
	// IssueDocumentParse means the master document is malformed; the
	// affected instance was left untouched.
	IssueDocumentParse IssueKind = "document_parse_error"
	// IssueComponentLookup means a live component was missing despite the
	// catalog listing it; that component was skipped.
	IssueComponentLookup IssueKind = "component_lookup_failure"
	// IssuePropertyTypeMismatch means a master value could not be decoded
	// into the property's declared kind; that property was skipped.
	IssuePropertyTypeMismatch IssueKind = "property_type_mismatch"
	// IssuePropertyWrite means the accessor rejected the decoded value;
	// that property was skipped.
	IssuePropertyWrite IssueKind = "property_write_failure"
)

// Issue describes a single scoped failure during a synchronization pass.
type Issue struct {
	// Kind classifies the failure.
	Kind IssueKind `json:"kind"`

	// Path is the structural path affected (component or
	// component/property), empty for document-level failures.
	Path string `json:"path,omitempty"`

	// Reason is a human-readable description.
	Reason string `json:"reason"`
}

// InstanceReport summarizes reconciliation of one prefab instance.
type InstanceReport struct {
	// Entity is the instance's entity ID.
	Entity string `json:"entity"`

	// ComponentsAdded lists component types attached by the add rule.
	ComponentsAdded []string `json:"components_added,omitempty"`

	// ComponentsRemoved lists component types detached by the remove rule.
	ComponentsRemoved []string `json:"components_removed,omitempty"`

	// PropertiesUpdated lists "Component/Property" paths whose live value
	// was overwritten from the master.
	PropertiesUpdated []string `json:"properties_updated,omitempty"`

	// Issues lists scoped failures encountered for this instance.
	Issues []Issue `json:"issues,omitempty"`
}

// Changed reports whether the pass mutated this instance at all.
func (r *InstanceReport) Changed() bool {
	return len(r.ComponentsAdded) > 0 || len(r.ComponentsRemoved) > 0 || len(r.PropertiesUpdated) > 0
}

// Summary provides aggregate counts for a synchronization pass.
type Summary struct {
	// Instances is the number of instances reconciled (matching master).
	Instances int `json:"instances"`

	// ComponentsAdded counts components attached across all instances.
	ComponentsAdded int `json:"components_added"`

	// ComponentsRemoved counts components detached across all instances.
	ComponentsRemoved int `json:"components_removed"`

	// PropertiesUpdated counts property values written across all instances.
	PropertiesUpdated int `json:"properties_updated"`

	// Failures counts all scoped issues across all instances.
	Failures int `json:"failures"`
}

// SyncReport is the aggregated result of one synchronization pass. It is
// the only externally observable outcome besides the scene mutation itself.
type SyncReport struct {
	// Master is the handle of the master prefab that was synchronized.
	Master string `json:"master"`

	// Instances contains one report per reconciled instance, in the entity
	// store's iteration order.
	Instances []InstanceReport `json:"instances"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// addInstance appends an instance report and folds it into the summary.
func (r *SyncReport) addInstance(ir InstanceReport) {
	r.Instances = append(r.Instances, ir)
	r.Summary.Instances++
	r.Summary.ComponentsAdded += len(ir.ComponentsAdded)
	r.Summary.ComponentsRemoved += len(ir.ComponentsRemoved)
	r.Summary.PropertiesUpdated += len(ir.PropertiesUpdated)
	r.Summary.Failures += len(ir.Issues)
}
