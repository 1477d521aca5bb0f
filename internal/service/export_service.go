package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/julisunkan/sbp-pwa/internal/domains"
	"github.com/julisunkan/sbp-pwa/internal/render"
)

// SurveySource yields the survey being edited.
type SurveySource interface {
	Survey() domains.Survey
}

// SettingsSource yields the current delivery settings.
type SettingsSource interface {
	Get(ctx context.Context) (domains.Settings, error)
}

// BundlePackager builds the downloadable archive from a survey.
type BundlePackager interface {
	Build(ctx context.Context, survey domains.Survey, settings domains.Settings, now time.Time) (string, []byte, error)
}

// ExportService produces every rendered artifact of the survey: editor and
// preview HTML, the embeddable document, and the packaged bundle.
type ExportService struct {
	surveys   SurveySource
	settings  SettingsSource
	packager  BundlePackager
	exportDir string
}

func NewExportService(surveys SurveySource, settings SettingsSource, packager BundlePackager, exportDir string) *ExportService {
	return &ExportService{
		surveys:   surveys,
		settings:  settings,
		packager:  packager,
		exportDir: exportDir,
	}
}

// Preview renders the read-only preview of the whole survey.
func (s *ExportService) Preview() string {
	return render.Preview(s.surveys.Survey())
}

// Editor renders the editable blocks of the whole survey.
func (s *ExportService) Editor() string {
	return render.Editor(s.surveys.Survey())
}

// EditorBlock renders one question's editable block.
func (s *ExportService) EditorBlock(id int) (string, error) {
	survey := s.surveys.Survey()
	idx := survey.QuestionByID(id)
	if idx < 0 {
		return "", ErrQuestionNotFound
	}
	return render.EditorBlock(survey.Questions[idx]), nil
}

// EmbedDocument renders the standalone single-file survey page.
func (s *ExportService) EmbedDocument(ctx context.Context) (string, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	return render.EmbedDocument(s.surveys.Survey(), settings), nil
}

// Bundle packages the survey into a zip, keeping a copy in the export
// directory when one is configured. The copy is best effort, the download
// succeeds regardless.
func (s *ExportService) Bundle(ctx context.Context) (string, []byte, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", nil, err
	}

	name, data, err := s.packager.Build(ctx, s.surveys.Survey(), settings, time.Now())
	if err != nil {
		slog.Error("build bundle failed", "err", err)
		return "", nil, err
	}

	if s.exportDir != "" {
		if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
			slog.Warn("create export dir failed", "err", err)
		} else if err := os.WriteFile(filepath.Join(s.exportDir, name), data, 0o644); err != nil {
			slog.Warn("keep export copy failed", "err", err, "name", name)
		}
	}

	return name, data, nil
}
