package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/julisunkan/sbp-pwa/internal/domains"
	"github.com/julisunkan/sbp-pwa/internal/httpx"
)

type SettingsHandlers struct {
	service SettingsServices
}

type SettingsServices interface {
	Get(ctx context.Context) (domains.Settings, error)
	Save(ctx context.Context, settings domains.Settings) (domains.Settings, []string, error)
	Clear(ctx context.Context) error
}

func NewSettingsHandlers(service SettingsServices) *SettingsHandlers {
	return &SettingsHandlers{service: service}
}

func (h *SettingsHandlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		slog.Error("GetSettings failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	httpx.JSON(w, http.StatusOK, settings)
}

func (h *SettingsHandlers) SaveSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := httpx.ReadBody[domains.Settings](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, warnings, err := h.service.Save(r.Context(), settings)
	if err != nil {
		slog.Error("SaveSettings failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	if warnings == nil {
		warnings = []string{}
	}
	httpx.JSON(w, http.StatusOK, SettingsSaveResponse{Settings: saved, Warnings: warnings})
}

func (h *SettingsHandlers) ClearSettings(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		slog.Error("ClearSettings failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to clear settings")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
