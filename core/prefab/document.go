package prefab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Handle identifies a master prefab asset. Instances reference their master
// by handle equality.
type Handle = uuid.UUID

// ErrDocumentNotFound is returned when a master prefab document does not
// exist at its resolved source path.
var ErrDocumentNotFound = errors.New("prefab document not found")

// ParseError is returned when a master prefab document exists but cannot be
// decoded into a valid entity description.
type ParseError struct {
	// Path is the source the document was read from.
	Path string
	// Err is the underlying decode failure.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse prefab document %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Document is an immutable parsed master prefab definition. The root holds
// one logical entity: component-type name to property-name/value object.
type Document struct {
	path   string
	entity map[string]map[string]any
}

// documentRoot matches the persisted format: a single "Entity" object.
type documentRoot struct {
	Entity map[string]json.RawMessage `json:"Entity"`
}

// LoadDocument reads and parses a master prefab file. It returns
// ErrDocumentNotFound if the file is missing and a *ParseError if the
// content is malformed; callers must abort the affected instance's
// reconciliation on either.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("read prefab document %s: %w", path, err)
	}
	return ParseDocument(path, data)
}

// ParseDocument decodes raw document bytes. The path is recorded for error
// reporting only.
func ParseDocument(path string, data []byte) (*Document, error) {
	var root documentRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if root.Entity == nil {
		return nil, &ParseError{Path: path, Err: errors.New(`missing "Entity" object`)}
	}

	entity := make(map[string]map[string]any, len(root.Entity))
	for name, raw := range root.Entity {
		var props map[string]any
		if err := json.Unmarshal(raw, &props); err != nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("component %s is not an object: %w", name, err)}
		}
		entity[name] = props
	}

	return &Document{path: path, entity: entity}, nil
}

// Path returns the source the document was loaded from.
func (d *Document) Path() string { return d.path }

// HasComponent reports whether the master defines the named component.
func (d *Document) HasComponent(name string) bool {
	_, ok := d.entity[name]
	return ok
}

// Value returns the master value at componentName/propertyName. The second
// result is false when the master has no value at that path.
func (d *Document) Value(component, property string) (any, bool) {
	props, ok := d.entity[component]
	if !ok {
		return nil, false
	}
	v, ok := props[property]
	return v, ok
}

// Source loads master prefab documents by handle. Implementations resolve
// the handle to a source path (local file or storage object) and must
// re-read on every call; the engine relies on fresh loads per instance.
type Source interface {
	Load(ctx context.Context, master Handle) (*Document, error)
}
