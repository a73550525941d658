// Package writer persists rendered assets and auxiliary artifacts to the
// output directory, isolating failures per item.
package writer

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/iconsmith/internal/artifact"
	"github.com/alexisbeaulieu97/iconsmith/internal/logger"
	"github.com/alexisbeaulieu97/iconsmith/internal/model"
	iconsmitherrors "github.com/alexisbeaulieu97/iconsmith/pkg/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer persists run outputs under a root directory.
type Writer struct {
	root string
	log  *logger.Logger
}

// New creates a Writer rooted at dir.
func New(dir string, log *logger.Logger) *Writer {
	return &Writer{root: dir, log: log}
}

// Root returns the output directory.
func (w *Writer) Root() string {
	return w.root
}

// WriteAssets persists every generated asset. A failed write is recorded
// and the loop continues; the returned errors list one entry per failure.
func (w *Writer) WriteAssets(assets []model.GeneratedAsset) []error {
	var errs []error
	for _, asset := range assets {
		if err := w.writeFile(asset.OutputPath, asset.Pixels); err != nil {
			w.log.Error(err, "asset write failed")
			errs = append(errs, err)
			continue
		}
		w.log.WithFields(map[string]any{"path": asset.OutputPath}).Debug("asset written")
	}
	return errs
}

// WriteArtifacts persists auxiliary artifacts with the same per-item
// isolation as assets.
func (w *Writer) WriteArtifacts(artifacts []artifact.Artifact) []error {
	var errs []error
	for _, a := range artifacts {
		if err := w.writeFile(a.Path, a.Data); err != nil {
			w.log.Error(err, "artifact write failed")
			errs = append(errs, err)
			continue
		}
		w.log.WithFields(map[string]any{"path": a.Path}).Debug("artifact written")
	}
	return errs
}

// WriteText persists a standalone text file under the root and returns its
// absolute path.
func (w *Writer) WriteText(relPath, content string) (string, error) {
	if err := w.writeFile(relPath, []byte(content)); err != nil {
		return "", err
	}
	return filepath.Join(w.root, relPath), nil
}

func (w *Writer) writeFile(relPath string, data []byte) error {
	full := filepath.Join(w.root, relPath)
	if err := os.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
		return iconsmitherrors.NewWriteError(relPath, err)
	}
	if err := os.WriteFile(full, data, filePerm); err != nil {
		return iconsmitherrors.NewWriteError(relPath, err)
	}
	return nil
}
