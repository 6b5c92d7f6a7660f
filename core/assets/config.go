package assets

// Config holds configuration for the prefab asset library.
type Config struct {
	// Source selects where master prefabs live: "file" or "storage".
	Source string `mapstructure:"source" default:"file"`
	// Dir is the local prefab directory (file source).
	Dir string `mapstructure:"dir" default:"assets/prefabs"`
	// Prefix is the object key prefix inside the bucket (storage source).
	Prefix string `mapstructure:"prefix" default:"prefabs"`
	// Manifest is the manifest file name, relative to Dir or Prefix.
	Manifest string `mapstructure:"manifest" default:"library.json"`
	// Scene is the scene document the server operates on.
	Scene string `mapstructure:"scene" default:"scene.json"`
}

const (
	SourceFile    = "file"
	SourceStorage = "storage"
)

// IsValidSource checks if the configured source kind is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage:
		return true
	default:
		return false
	}
}
