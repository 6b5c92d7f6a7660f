// Package prefabs exposes prefab synchronization to the editor UI.
//
// The service wraps the sync engine with the one re-entrancy guarantee the
// engine itself does not provide: passes are serialized behind a mutex, so
// an HTTP client cannot start a second pass while one is in flight. The
// handler registers the routes; the UI never drives reconciliation logic
// directly, it only triggers passes and reads reports.
package prefabs
