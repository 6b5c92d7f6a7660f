package prefab

import "github.com/google/uuid"

// EntityID identifies a live entity in the scene.
type EntityID = uuid.UUID

// InstanceRef pairs a live entity with its override ledger. Only entities
// carrying a ledger are prefab instances.
type InstanceRef struct {
	ID     EntityID
	Ledger *Ledger
}

// Store is the scene's entity storage as consumed by the sync engine. The
// engine assumes exclusive access to the entities it updates for the
// duration of one synchronization call; implementations need no locking.
type Store interface {
	// Instances returns all prefab instances in the store's iteration
	// order. The engine reconciles them in this order, each instance fully
	// before the next.
	Instances() []InstanceRef

	// HasComponent reports whether the entity carries the component.
	HasComponent(id EntityID, typeName string) bool

	// Component returns the live component attached to the entity, or
	// false when absent.
	Component(id EntityID, typeName string) (any, bool)

	// AddComponent attaches a default-constructed component to the entity
	// and returns it. It returns false when the type is unknown to the
	// store or the entity does not exist.
	AddComponent(id EntityID, typeName string) (any, bool)

	// RemoveComponent detaches the component from the entity. It returns
	// false when the entity did not carry it.
	RemoveComponent(id EntityID, typeName string) bool
}
