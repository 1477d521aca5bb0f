package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/julisunkan/sbp-pwa/internal/domains"
)

// SettingsProvider persists the delivery settings.
type SettingsProvider interface {
	Load(ctx context.Context) (domains.Settings, error)
	Save(ctx context.Context, settings domains.Settings) error
	Clear(ctx context.Context) error
}

type SettingsService struct {
	provider SettingsProvider
}

func NewSettingsService(provider SettingsProvider) *SettingsService {
	return &SettingsService{provider: provider}
}

func (s *SettingsService) Get(ctx context.Context) (domains.Settings, error) {
	settings, err := s.provider.Load(ctx)
	if err != nil {
		slog.Error("load settings failed", "err", err)
		return domains.Settings{}, err
	}
	return settings, nil
}

// Save stores the settings and stamps lastUpdated. Validation is advisory:
// warnings are logged and returned, the save always proceeds.
func (s *SettingsService) Save(ctx context.Context, settings domains.Settings) (domains.Settings, []string, error) {
	warnings := settings.Validate()
	for _, warning := range warnings {
		slog.Warn("settings validation", "warning", warning)
	}

	stamp := time.Now().UTC().Format(time.RFC3339)
	settings.LastUpdated = &stamp

	if err := s.provider.Save(ctx, settings); err != nil {
		slog.Error("save settings failed", "err", err)
		return domains.Settings{}, nil, err
	}
	return settings, warnings, nil
}

func (s *SettingsService) Clear(ctx context.Context) error {
	if err := s.provider.Clear(ctx); err != nil {
		slog.Error("clear settings failed", "err", err)
		return err
	}
	return nil
}
