// Package bundle assembles the downloadable export: the generated survey
// pages, their assets, documentation and config, packed into one archive.
package bundle

import (
	"context"
	"fmt"
	"time"

	"github.com/julisunkan/sbp-pwa/internal/archive"
	"github.com/julisunkan/sbp-pwa/internal/domains"
	"github.com/julisunkan/sbp-pwa/internal/render"
)

type Packager struct {
	archiver archive.Archiver
}

func NewPackager(archiver archive.Archiver) *Packager {
	return &Packager{archiver: archiver}
}

// Files produces the complete bundle file set keyed by archive entry name.
func (p *Packager) Files(survey domains.Survey, settings domains.Settings, now time.Time) (map[string]string, error) {
	config, err := ConfigJSON(survey, settings, now)
	if err != nil {
		return nil, fmt.Errorf("build survey-config.json: %w", err)
	}
	return map[string]string{
		"survey.html":          render.EmbedDocument(survey, settings),
		"survey-separate.html": render.SeparateDocument(survey),
		"styles.css":           StandaloneCSS(now),
		"script.js":            StandaloneJS(settings, now),
		"README.md":            Readme(survey, settings, now),
		"emailjs-template.txt": EmailTemplate(survey),
		"survey-config.json":   config,
	}, nil
}

// Build generates the bundle files and packs them into an archive, returning
// the download filename alongside the archive bytes.
func (p *Packager) Build(ctx context.Context, survey domains.Survey, settings domains.Settings, now time.Time) (string, []byte, error) {
	files, err := p.Files(survey, settings, now)
	if err != nil {
		return "", nil, err
	}
	data, err := p.archiver.Archive(ctx, files)
	if err != nil {
		return "", nil, fmt.Errorf("archive bundle: %w", err)
	}
	return Name(survey.Title, now), data, nil
}
