// Package history persists an audit trail of synchronization passes.
//
// Each pass is recorded as one row: the master handle, aggregate counts and
// the full report as JSON. The store is optional; when no database is
// configured the application runs with history disabled.
package history
