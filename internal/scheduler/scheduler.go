// Package scheduler prunes old bundle copies from the export directory.
package scheduler

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type ExportSweeper struct {
	dir      string
	maxAge   time.Duration
	interval time.Duration
}

func NewExportSweeper(dir string, maxAge, interval time.Duration) *ExportSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExportSweeper{dir: dir, maxAge: maxAge, interval: interval}
}

func (s *ExportSweeper) Start(ctx context.Context) {
	if s.dir == "" || s.maxAge <= 0 {
		slog.Warn("export sweeper skipped: no directory or retention configured")
		return
	}
	ticker := time.NewTicker(s.interval)
	go func() {
		defer ticker.Stop()
		s.run(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run(ctx)
			}
		}
	}()
}

func (s *ExportSweeper) run(ctx context.Context) {
	cutoff := time.Now().Add(-s.maxAge)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("read export dir failed", "err", err)
		}
		return
	}

	var removed int
	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".zip") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			slog.Error("remove stale export failed", "err", err, "name", entry.Name())
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("stale exports removed", "count", removed)
	}
}
