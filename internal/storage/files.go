package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"textile-market-backend/internal/ident"
)

// FileStore writes uploaded images into a single uploads directory, each
// keyed by a generated identifier.
type FileStore struct {
	dir string
}

// New creates the uploads directory if needed and returns a FileStore
// rooted at it.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the uploads directory path.
func (s *FileStore) Dir() string {
	return s.dir
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeName reduces a client-supplied filename to a safe basename,
// keeping the extension intact.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "upload"
	}
	return name
}

// Save streams src into the uploads directory under a unique name built from
// a fresh file key and the sanitized original filename. The destination
// handle is released on every exit path; a partially written file is removed
// when the write fails, so a failed upload leaves nothing behind.
func (s *FileStore) Save(originalName string, src io.Reader) (storedName, storedPath string, err error) {
	storedName = fmt.Sprintf("%s_%s", ident.NewFileKey(), sanitizeName(originalName))
	storedPath = filepath.Join(s.dir, storedName)

	dst, err := os.OpenFile(storedPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("open destination: %w", err)
	}

	_, werr := io.Copy(dst, src)
	cerr := dst.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(storedPath)
		return "", "", fmt.Errorf("write %s: %w", storedName, werr)
	}
	return storedName, storedPath, nil
}

// WriteTemp stores transient image bytes for one-off analysis. The caller
// removes the file when done.
func (s *FileStore) WriteTemp(data []byte) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("temp_%s.jpg", ident.NewFileKey()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return path, nil
}

// Remove deletes a previously written file.
func (s *FileStore) Remove(path string) error {
	return os.Remove(path)
}
