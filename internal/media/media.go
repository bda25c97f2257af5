package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for files that are not images.
var ErrUnsupportedType = errors.New("unsupported file type")

var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

type Config struct {
	Dir     string
	BaseURL string
}

// Storage keeps uploaded images on the local disk under uuid names.
type Storage struct {
	dir     string
	baseURL string
}

func New(cfg Config) *Storage {
	dir := cfg.Dir
	if dir == "" {
		dir = "./media"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "/media"
	}

	return &Storage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Dir is the root directory served under the base URL.
func (s *Storage) Dir() string {
	return s.dir
}

// Save writes body into folder and returns a reference relative to the storage root.
func (s *Storage) Save(_ context.Context, folder, filename string, body io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := imageExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	folder = filepath.Base(filepath.Clean("/" + folder))
	if err := os.MkdirAll(filepath.Join(s.dir, folder), 0o755); err != nil {
		return "", fmt.Errorf("create media folder: %w", err)
	}

	ref := path.Join(folder, uuid.New().String()+ext)
	f, err := os.Create(filepath.Join(s.dir, filepath.FromSlash(ref)))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write media file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close media file: %w", err)
	}

	return ref, nil
}

// Delete removes a stored file. Missing files are not an error.
func (s *Storage) Delete(_ context.Context, ref string) error {
	p, err := s.path(ref)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove media file: %w", err)
	}

	return nil
}

// URL returns the public address of ref. Empty refs give an empty URL.
func (s *Storage) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return s.baseURL + "/" + strings.TrimLeft(ref, "/")
}

func (s *Storage) path(ref string) (string, error) {
	clean := path.Clean("/" + ref)
	if clean == "/" {
		return "", fmt.Errorf("invalid media reference %q", ref)
	}
	return filepath.Join(s.dir, filepath.FromSlash(clean)), nil
}
