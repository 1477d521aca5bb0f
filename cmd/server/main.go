package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/julisunkan/sbp-pwa/internal/config"
	"github.com/julisunkan/sbp-pwa/internal/scheduler"
	"github.com/julisunkan/sbp-pwa/internal/server"
	"github.com/julisunkan/sbp-pwa/internal/storage"
	httptransport "github.com/julisunkan/sbp-pwa/internal/transport/http"
)

func main() {
	cfg := config.MustLoad()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := newStore(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer closeStore()

	scheduler.NewExportSweeper(cfg.Export.Dir, cfg.Export.Retention, cfg.Export.SweepInterval).Start(ctx)

	router, err := httptransport.Router(ctx, store, cfg)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := server.Start(ctx, addr, cfg.CORS.AllowedOrigin, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// newStore selects the Postgres store when a database URL is configured and
// the file store otherwise.
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
