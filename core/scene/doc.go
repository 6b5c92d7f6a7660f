// Package scene provides the in-memory entity store the synchronization
// engine operates on, plus load/save of scene documents.
//
// The store implements prefab.Store: entities are created in spawn order and
// iterated in that order, which fixes the order instances are reconciled in.
// Entities carrying an override ledger are prefab instances; components are
// default-constructed through the catalog when attached.
//
// A scene document is a JSON file listing entities with their IDs, ledger
// blocks and component property objects. The live editor holds the same
// state in its registry; the CLI works on the file form.
package scene
