package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"prefab-manager/core/assets"
	"prefab-manager/core/config"
	"prefab-manager/core/database"
	"prefab-manager/core/logger"
	"prefab-manager/core/prefab"
	"prefab-manager/core/scene"
	"prefab-manager/core/storage"
	"prefab-manager/feature/components"
	"prefab-manager/feature/history"
	"prefab-manager/feature/prefabs"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncScene  string
	syncMaster string
	syncWrite  bool
	syncRecord bool
)

// syncCmd runs one synchronization pass on a scene file.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize prefab instances in a scene with their master",
	Long: `Run one synchronization pass: propagate the master prefab definition to
every instance in the scene, preserving locally added components and
overridden properties. Prints the sync report as JSON.

Examples:
  # Report what a pass does, without saving the scene
  prefab-manager sync --scene scene.json --prefab 7b29...

  # Apply and save the scene back
  prefab-manager sync --scene scene.json --prefab 7b29... --write

  # Also record the pass in the history database
  prefab-manager sync --scene scene.json --prefab 7b29... --write --record`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncScene, "scene", "", "Scene file to synchronize (defaults to the configured scene)")
	syncCmd.Flags().StringVar(&syncMaster, "prefab", "", "Master prefab handle (UUID)")
	syncCmd.Flags().BoolVar(&syncWrite, "write", false, "Save the scene back after the pass")
	syncCmd.Flags().BoolVar(&syncRecord, "record", false, "Record the pass in the history database")
	_ = syncCmd.MarkFlagRequired("prefab")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	master, err := uuid.Parse(syncMaster)
	if err != nil {
		return fmt.Errorf("invalid master prefab handle %q: %w", syncMaster, err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	catalog, err := components.NewCatalog()
	if err != nil {
		return fmt.Errorf("failed to build component catalog: %w", err)
	}

	library, err := openLibrary(ctx, cfg)
	if err != nil {
		return err
	}

	scenePath := syncScene
	if scenePath == "" {
		scenePath = cfg.Assets.Scene
	}
	store, err := scene.Load(scenePath, catalog)
	if err != nil {
		return err
	}

	var hist *history.Store
	if syncRecord {
		conn, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to history database: %w", err)
		}
		hist = history.NewStore(conn)
		if err := hist.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate history schema: %w", err)
		}
	}

	engine := prefab.NewEngine(library, catalog, l)
	svc := prefabs.NewService(engine, store, catalog, hist, l)

	report := svc.Sync(ctx, master)

	if syncWrite {
		if err := scene.Save(scenePath, store, catalog); err != nil {
			return err
		}
		l.Info("Scene saved", zap.String("path", scenePath))
	} else if report.Summary.ComponentsAdded+report.Summary.ComponentsRemoved+report.Summary.PropertiesUpdated > 0 {
		l.Info("Dry run, scene not saved (use --write to apply)")
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// openLibrary builds the prefab library selected by configuration.
func openLibrary(ctx context.Context, cfg *config.Config) (assets.Library, error) {
	switch cfg.Assets.Source {
	case assets.SourceStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		lib, err := assets.NewStorageLibrary(ctx, client, cfg.Storage.Bucket, cfg.Assets.Prefix, cfg.Assets.Manifest)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage prefab library: %w", err)
		}
		return lib, nil
	case assets.SourceFile:
		lib, err := assets.NewFileLibrary(cfg.Assets.Dir, cfg.Assets.Manifest)
		if err != nil {
			return nil, fmt.Errorf("failed to open file prefab library: %w", err)
		}
		return lib, nil
	default:
		return nil, fmt.Errorf("invalid assets source %q", cfg.Assets.Source)
	}
}
