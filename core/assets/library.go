package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"prefab-manager/core/prefab"
	"prefab-manager/core/storage"
)

// Library resolves master prefab handles to source documents. SourcePath is
// the resolution step on its own; Load resolves and reads.
type Library interface {
	prefab.Source

	// SourcePath resolves a handle to the path (or object key) of its
	// master document. An unknown handle resolves to
	// prefab.ErrDocumentNotFound: a handle without a source behaves like
	// a deleted master.
	SourcePath(master prefab.Handle) (string, error)
}

// manifest is the persisted handle-to-path index of a library.
type manifest map[string]string

func (m manifest) resolve(master prefab.Handle) (string, error) {
	rel, ok := m[master.String()]
	if !ok {
		return "", fmt.Errorf("handle %s: %w", master, prefab.ErrDocumentNotFound)
	}
	return rel, nil
}

func parseManifest(data []byte) (manifest, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse library manifest: %w", err)
	}
	for handle := range m {
		if _, err := uuid.Parse(handle); err != nil {
			return nil, fmt.Errorf("library manifest: bad handle %q: %w", handle, err)
		}
	}
	return m, nil
}

// FileLibrary serves master prefab documents from a local directory.
type FileLibrary struct {
	dir     string
	entries manifest
}

// NewFileLibrary reads the manifest under dir and returns a library over it.
func NewFileLibrary(dir, manifestName string) (*FileLibrary, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return nil, fmt.Errorf("read library manifest: %w", err)
	}
	entries, err := parseManifest(data)
	if err != nil {
		return nil, err
	}
	return &FileLibrary{dir: dir, entries: entries}, nil
}

// SourcePath resolves a handle to the document's path on disk.
func (l *FileLibrary) SourcePath(master prefab.Handle) (string, error) {
	rel, err := l.entries.resolve(master)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.dir, rel), nil
}

// Load resolves and reads the master document, fresh on every call.
func (l *FileLibrary) Load(ctx context.Context, master prefab.Handle) (*prefab.Document, error) {
	path, err := l.SourcePath(master)
	if err != nil {
		return nil, err
	}
	return prefab.LoadDocument(path)
}

// StorageLibrary serves master prefab documents from an object-storage
// bucket under a key prefix.
type StorageLibrary struct {
	client  storage.Client
	bucket  string
	prefix  string
	entries manifest
}

// NewStorageLibrary fetches the manifest object and returns a library over
// the bucket.
func NewStorageLibrary(ctx context.Context, client storage.Client, bucket, prefix, manifestName string) (*StorageLibrary, error) {
	reader, err := client.GetObject(ctx, bucket, path.Join(prefix, manifestName), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch library manifest: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read library manifest: %w", err)
	}
	entries, err := parseManifest(data)
	if err != nil {
		return nil, err
	}
	return &StorageLibrary{client: client, bucket: bucket, prefix: prefix, entries: entries}, nil
}

// SourcePath resolves a handle to the document's object key.
func (l *StorageLibrary) SourcePath(master prefab.Handle) (string, error) {
	rel, err := l.entries.resolve(master)
	if err != nil {
		return "", err
	}
	return path.Join(l.prefix, rel), nil
}

// Load resolves and fetches the master document, fresh on every call.
func (l *StorageLibrary) Load(ctx context.Context, master prefab.Handle) (*prefab.Document, error) {
	key, err := l.SourcePath(master)
	if err != nil {
		return nil, err
	}

	reader, err := l.client.GetObject(ctx, l.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch prefab document %s: %w", key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		// Minio surfaces missing keys on read, not on GetObject.
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%s: %w", key, prefab.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("read prefab document %s: %w", key, err)
	}

	return prefab.ParseDocument(key, data)
}
