// Package assets resolves master prefab handles to their source documents.
//
// A library maps handles to source paths through a manifest (a JSON object
// of handle to relative path). Two library kinds exist: FileLibrary reads
// documents from a local directory, StorageLibrary from an object-storage
// bucket. Both implement prefab.Source and re-read the document on every
// load, so the synchronization engine always sees the latest saved master.
package assets
