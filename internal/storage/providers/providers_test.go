package providers

import (
	"context"
	"testing"

	"github.com/julisunkan/sbp-pwa/internal/domains"
	"github.com/julisunkan/sbp-pwa/internal/storage"
)

func newTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return store
}

func TestSnapshotProviderRoundTrip(t *testing.T) {
	provider := NewSnapshotProvider(newTestStore(t))
	ctx := context.Background()

	snapshot := domains.SurveySnapshot{
		Questions:         []domains.Question{domains.NewQuestion(1, domains.KindShortAnswer)},
		CurrentQuestionID: 1,
		SurveyTitle:       "Feedback",
		Timestamp:         "2024-03-15T09:30:45Z",
	}
	if err := provider.Save(ctx, snapshot); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := provider.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SurveyTitle != "Feedback" || loaded.CurrentQuestionID != 1 || len(loaded.Questions) != 1 {
		t.Fatalf("loaded snapshot = %+v", loaded)
	}
	if loaded.Questions[0].Title != "Short Answer Question" {
		t.Fatalf("loaded question = %+v", loaded.Questions[0])
	}
}

func TestSnapshotProviderMissing(t *testing.T) {
	provider := NewSnapshotProvider(newTestStore(t))
	loaded, err := provider.Load(context.Background())
	if err != nil {
		t.Fatalf("Load of missing snapshot failed: %v", err)
	}
	if len(loaded.Questions) != 0 || loaded.SurveyTitle != "" {
		t.Fatalf("missing snapshot must load zero, got %+v", loaded)
	}
}

func TestSnapshotProviderMalformed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if err := store.Set(ctx, "surveyBuilderData", "{not json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	provider := NewSnapshotProvider(store)
	loaded, err := provider.Load(ctx)
	if err != nil {
		t.Fatalf("malformed snapshot must not fail the load: %v", err)
	}
	if len(loaded.Questions) != 0 {
		t.Fatalf("malformed snapshot must load zero, got %+v", loaded)
	}
}

func TestSnapshotProviderClear(t *testing.T) {
	provider := NewSnapshotProvider(newTestStore(t))
	ctx := context.Background()

	if err := provider.Save(ctx, domains.SurveySnapshot{SurveyTitle: "gone soon"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := provider.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	loaded, err := provider.Load(ctx)
	if err != nil {
		t.Fatalf("Load after clear failed: %v", err)
	}
	if loaded.SurveyTitle != "" {
		t.Fatalf("snapshot survived clear: %+v", loaded)
	}
}

func TestSettingsProviderRoundTrip(t *testing.T) {
	provider := NewSettingsProvider(newTestStore(t))
	ctx := context.Background()

	settings := domains.Settings{UserID: "user_1", ServiceID: "svc_1", TemplateID: "tpl_1"}
	if err := provider.Save(ctx, settings); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := provider.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !loaded.Configured() || loaded.UserID != "user_1" {
		t.Fatalf("loaded settings = %+v", loaded)
	}
}

func TestSettingsProviderMalformed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	if err := store.Set(ctx, "surveyBuilderSettings", "]["); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	provider := NewSettingsProvider(store)
	loaded, err := provider.Load(ctx)
	if err != nil {
		t.Fatalf("malformed settings must not fail the load: %v", err)
	}
	if loaded.Configured() || loaded.UserID != "" {
		t.Fatalf("malformed settings must load defaults, got %+v", loaded)
	}
}
