package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage writes uploads under a filesystem root, bucketed into a
// per-day subfolder computed from the current UTC date. The returned public
// URL joins the configured URL prefix, the day bucket and the generated name.
type LocalStorage struct {
	root      string
	urlPrefix string
	now       func() time.Time
}

// NewLocalStorage creates a disk-backed FileStorage.
func NewLocalStorage(root, urlPrefix string) *LocalStorage {
	return &LocalStorage{
		root:      root,
		urlPrefix: urlPrefix,
		now:       time.Now,
	}
}

func (s *LocalStorage) Save(ctx context.Context, content io.Reader, ext string) (string, error) {
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("disallowed image extension %q", ext)
	}

	day := s.now().UTC().Format("20060102")
	dir := filepath.Join(s.root, day)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", err
	}

	return path.Join("/", s.urlPrefix, day, name), nil
}
