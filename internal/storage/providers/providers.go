package providers

import "github.com/julisunkan/sbp-pwa/internal/storage"

type Providers struct {
	SnapshotProvider *SnapshotProvider
	SettingsProvider *SettingsProvider
}

func New(store storage.Store) *Providers {
	snapshotProvider := NewSnapshotProvider(store)
	settingsProvider := NewSettingsProvider(store)

	return &Providers{
		SnapshotProvider: snapshotProvider,
		SettingsProvider: settingsProvider,
	}
}
