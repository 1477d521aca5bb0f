package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julisunkan/sbp-pwa/internal/archive"
	"github.com/julisunkan/sbp-pwa/internal/bundle"
	"github.com/julisunkan/sbp-pwa/internal/domains"
	"github.com/julisunkan/sbp-pwa/internal/storage"
	"github.com/julisunkan/sbp-pwa/internal/storage/providers"
)

func newExportFixture(t *testing.T, exportDir string) (*BuilderService, *SettingsService, *ExportService) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	all := providers.New(store)
	builder := NewBuilderService(all.SnapshotProvider)
	settings := NewSettingsService(all.SettingsProvider)
	packager := bundle.NewPackager(archive.NewZipArchiver())
	export := NewExportService(builder, settings, packager, exportDir)
	return builder, settings, export
}

func TestExportPreviewAndEditor(t *testing.T) {
	builder, _, export := newExportFixture(t, "")
	ctx := context.Background()

	if !strings.Contains(export.Preview(), "Preview will appear here") {
		t.Fatal("empty survey must render the empty preview")
	}

	question := builder.AddQuestion(ctx, domains.KindShortAnswer)
	if !strings.Contains(export.Preview(), "Short Answer Question") {
		t.Fatal("preview missing the added question")
	}
	if !strings.Contains(export.Editor(), "data-question-id") {
		t.Fatal("editor missing question blocks")
	}

	block, err := export.EditorBlock(question.ID)
	if err != nil {
		t.Fatalf("EditorBlock failed: %v", err)
	}
	if !strings.Contains(block, "Short Answer Question") {
		t.Fatalf("editor block = %q", block)
	}

	if _, err := export.EditorBlock(99); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("unknown id returned %v, want ErrQuestionNotFound", err)
	}
}

func TestExportEmbedDocument(t *testing.T) {
	builder, settings, export := newExportFixture(t, "")
	ctx := context.Background()

	builder.AddQuestion(ctx, domains.KindShortAnswer)
	if _, _, err := settings.Save(ctx, domains.Settings{UserID: "u1", ServiceID: "s1", TemplateID: "t1"}); err != nil {
		t.Fatalf("Save settings failed: %v", err)
	}

	doc, err := export.EmbedDocument(ctx)
	if err != nil {
		t.Fatalf("EmbedDocument failed: %v", err)
	}
	if !strings.Contains(doc, "emailjs.init('u1')") {
		t.Fatalf("document missing delivery script:\n%s", doc)
	}
}

func TestExportBundleKeepsCopy(t *testing.T) {
	exportDir := filepath.Join(t.TempDir(), "exports")
	builder, _, export := newExportFixture(t, exportDir)
	ctx := context.Background()

	builder.AddQuestion(ctx, domains.KindShortAnswer)
	name, data, err := export.Bundle(ctx)
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}
	if !strings.HasSuffix(name, ".zip") || len(data) == 0 {
		t.Fatalf("bundle name = %q, %d bytes", name, len(data))
	}

	copied, err := os.ReadFile(filepath.Join(exportDir, name))
	if err != nil {
		t.Fatalf("export copy missing: %v", err)
	}
	if len(copied) != len(data) {
		t.Fatalf("export copy is %d bytes, download is %d", len(copied), len(data))
	}
}
