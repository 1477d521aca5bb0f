package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/julisunkan/sbp-pwa/internal/domains"
	"github.com/julisunkan/sbp-pwa/internal/storage"
)

// settingsKey is the storage key the EmailJS settings live under.
const settingsKey = "surveyBuilderSettings"

type SettingsProvider struct {
	store storage.Store
}

func NewSettingsProvider(store storage.Store) *SettingsProvider {
	return &SettingsProvider{store: store}
}

// Load returns the persisted delivery settings. Missing or unreadable values
// yield empty settings, which render the exported form inert rather than
// failing the builder.
func (p *SettingsProvider) Load(ctx context.Context) (domains.Settings, error) {
	raw, err := p.store.Get(ctx, settingsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domains.Settings{}, nil
		}
		return domains.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	var settings domains.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		slog.Warn("stored settings are malformed, using defaults", "err", err)
		return domains.Settings{}, nil
	}
	return settings, nil
}

func (p *SettingsProvider) Save(ctx context.Context, settings domains.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := p.store.Set(ctx, settingsKey, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (p *SettingsProvider) Clear(ctx context.Context) error {
	if err := p.store.Remove(ctx, settingsKey); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}
