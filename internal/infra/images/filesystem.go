package images

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"stayops/internal/pkg/config"
	"stayops/internal/pkg/errs"
)

// FilesystemStore keeps uploaded images under a base directory, one
// subdirectory per kind (payment proofs, identity documents).
type FilesystemStore struct {
	baseDir string
}

func NewFilesystemStore(cfg config.ImageConfig) *FilesystemStore {
	return &FilesystemStore{baseDir: cfg.BaseDir}
}

func (s *FilesystemStore) Save(ctx context.Context, kind, filename string, data io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.baseDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errs.Wrap(err, "failed to create image directory")
	}

	// Prefix with nanos so repeated uploads of the same filename never clash.
	name := strconv.FormatInt(time.Now().UnixNano(), 10) + "_" + filepath.Base(filename)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", errs.Wrap(err, "failed to create image file")
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(path)
		return "", errs.Wrap(err, "failed to write image file")
	}

	return filepath.ToSlash(filepath.Join(kind, name)), nil
}
