// The exporter builds the survey bundle from the persisted snapshot without
// running the server, writing the zip to the output directory.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/julisunkan/sbp-pwa/internal/archive"
	"github.com/julisunkan/sbp-pwa/internal/bundle"
	"github.com/julisunkan/sbp-pwa/internal/config"
	"github.com/julisunkan/sbp-pwa/internal/service"
	"github.com/julisunkan/sbp-pwa/internal/storage"
	"github.com/julisunkan/sbp-pwa/internal/storage/providers"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", ".", "directory to write the bundle to")

	cfg := config.MustLoad()
	ctx := context.Background()

	store, closeStore, err := newStore(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer closeStore()

	allProviders := providers.New(store)
	builderService := service.NewBuilderService(allProviders.SnapshotProvider)
	if err := builderService.Restore(ctx); err != nil {
		log.Fatalf("failed to restore builder state: %v", err)
	}
	settingsService := service.NewSettingsService(allProviders.SettingsProvider)

	settings, err := settingsService.Get(ctx)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	packager := bundle.NewPackager(archive.NewZipArchiver())
	name, data, err := packager.Build(ctx, builderService.Survey(), settings, time.Now())
	if err != nil {
		log.Fatalf("failed to build bundle: %v", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("failed to write bundle: %v", err)
	}
	log.Printf("bundle written to %s", path)
}

func newStore(cfg *config.Config) (storage.Store, func(), error) {
	if cfg.DatabaseUrl != "" {
		db, err := storage.InitDB(cfg.DatabaseUrl)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewPostgresStore(db), db.Close, nil
	}

	fileStore, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return fileStore, func() {}, nil
}
