package history

import "time"

// Record is one persisted synchronization pass.
type Record struct {
	// ID is the auto-incrementing row ID.
	ID uint `gorm:"primaryKey" json:"id"`

	// Master is the handle of the synchronized master prefab.
	Master string `gorm:"size:36;index" json:"master"`

	// Instances is the number of instances reconciled.
	Instances int `json:"instances"`

	// ComponentsAdded counts components attached across the pass.
	ComponentsAdded int `json:"components_added"`

	// ComponentsRemoved counts components detached across the pass.
	ComponentsRemoved int `json:"components_removed"`

	// PropertiesUpdated counts property values written across the pass.
	PropertiesUpdated int `json:"properties_updated"`

	// Failures counts scoped issues across the pass.
	Failures int `json:"failures"`

	// Detail is the full SyncReport encoded as JSON.
	Detail string `gorm:"type:text" json:"detail,omitempty"`

	// CreatedAt is when the pass finished.
	CreatedAt time.Time `json:"created_at"`
}

// TableName fixes the table name independent of gorm pluralization rules.
func (Record) TableName() string { return "sync_records" }
