// Package archive packs generated file sets into a distributable container.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/klauspost/compress/flate"
)

// Archiver accepts a mapping of filename to text content and produces the
// binary archive.
type Archiver interface {
	Archive(ctx context.Context, files map[string]string) ([]byte, error)
}

type ZipArchiver struct {
	level int
}

func NewZipArchiver() *ZipArchiver {
	return &ZipArchiver{level: flate.BestCompression}
}

func (z *ZipArchiver) Archive(ctx context.Context, files map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	w.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, z.level)
	})

	// Entries are written in name order so the same file set always yields
	// the same archive layout.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := w.Create(name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := f.Write([]byte(files[name])); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}
