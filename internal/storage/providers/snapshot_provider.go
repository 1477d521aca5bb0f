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

// snapshotKey is the storage key the builder state lives under.
const snapshotKey = "surveyBuilderData"

type SnapshotProvider struct {
	store storage.Store
}

func NewSnapshotProvider(store storage.Store) *SnapshotProvider {
	return &SnapshotProvider{store: store}
}

// Load returns the persisted builder snapshot. A missing or unreadable value
// yields a zero snapshot so the builder always starts, at worst empty.
func (p *SnapshotProvider) Load(ctx context.Context) (domains.SurveySnapshot, error) {
	raw, err := p.store.Get(ctx, snapshotKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domains.SurveySnapshot{}, nil
		}
		return domains.SurveySnapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	var snapshot domains.SurveySnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		slog.Warn("stored snapshot is malformed, starting empty", "err", err)
		return domains.SurveySnapshot{}, nil
	}
	return snapshot, nil
}

func (p *SnapshotProvider) Save(ctx context.Context, snapshot domains.SurveySnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := p.store.Set(ctx, snapshotKey, string(data)); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (p *SnapshotProvider) Clear(ctx context.Context) error {
	if err := p.store.Remove(ctx, snapshotKey); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
