package httptransport

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/julisunkan/sbp-pwa/internal/archive"
	"github.com/julisunkan/sbp-pwa/internal/bundle"
	"github.com/julisunkan/sbp-pwa/internal/config"
	"github.com/julisunkan/sbp-pwa/internal/service"
	"github.com/julisunkan/sbp-pwa/internal/storage"
	"github.com/julisunkan/sbp-pwa/internal/storage/providers"
)

func Router(ctx context.Context, store storage.Store, cfg *config.Config) (*mux.Router, error) {
	router := mux.NewRouter()

	allProviders := providers.New(store)
	builderService := service.NewBuilderService(allProviders.SnapshotProvider)
	if err := builderService.Restore(ctx); err != nil {
		return nil, fmt.Errorf("restore builder state: %w", err)
	}
	settingsService := service.NewSettingsService(allProviders.SettingsProvider)
	packager := bundle.NewPackager(archive.NewZipArchiver())
	exportService := service.NewExportService(builderService, settingsService, packager, cfg.Export.Dir)

	builderHandler := NewBuilderHandlers(builderService)
	settingsHandler := NewSettingsHandlers(settingsService)
	exportHandler := NewExportHandlers(exportService)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/survey", builderHandler.GetSurvey).Methods(http.MethodGet)
	api.HandleFunc("/survey", builderHandler.UpdateSurveyInfo).Methods(http.MethodPut)
	api.HandleFunc("/survey/questions", builderHandler.AddQuestion).Methods(http.MethodPost)
	api.HandleFunc("/survey/questions/{id}", builderHandler.UpdateQuestion).Methods(http.MethodPatch)
	api.HandleFunc("/survey/questions/{id}", builderHandler.DeleteQuestion).Methods(http.MethodDelete)
	api.HandleFunc("/survey/questions/{id}/options", builderHandler.AddOption).Methods(http.MethodPost)
	api.HandleFunc("/survey/questions/{id}/options/{index}", builderHandler.UpdateOption).Methods(http.MethodPut)
	api.HandleFunc("/survey/questions/{id}/options/{index}", builderHandler.RemoveOption).Methods(http.MethodDelete)
	api.HandleFunc("/survey/questions/{id}/editor", exportHandler.GetEditorBlock).Methods(http.MethodGet)

	api.HandleFunc("/editor", exportHandler.GetEditor).Methods(http.MethodGet)
	api.HandleFunc("/preview", exportHandler.GetPreview).Methods(http.MethodGet)
	api.HandleFunc("/embed", exportHandler.GetEmbed).Methods(http.MethodGet)
	api.HandleFunc("/export/bundle", exportHandler.DownloadBundle).Methods(http.MethodGet)

	api.HandleFunc("/settings", settingsHandler.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings", settingsHandler.SaveSettings).Methods(http.MethodPut)
	api.HandleFunc("/settings", settingsHandler.ClearSettings).Methods(http.MethodDelete)

	return router, nil
}
