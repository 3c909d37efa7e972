package storage

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"feastly-be/internal/logger"

	"go.uber.org/zap"
)

// MaxImageSize caps uploads at 5 MiB, matching the storefront's limit.
const MaxImageSize = 5 << 20

type diskStore struct {
	baseDir string
}

// NewDiskStore returns an ImageStore writing under baseDir, creating the
// directory if needed.
func NewDiskStore(baseDir string) (ImageStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &diskStore{baseDir: baseDir}, nil
}

func (s *diskStore) Save(name string, data []byte) (string, error) {
	return s.SaveWithPrefix("", name, data)
}

func (s *diskStore) SaveWithPrefix(prefix, name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyUpload
	}
	if len(data) > MaxImageSize {
		return "", ErrTooLarge
	}

	// Sniff the real content type; the client-declared one is not trusted.
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(name))
	if prefix != "" {
		filename = joinPrefix(prefix, filename)
		if err := os.MkdirAll(filepath.Join(s.baseDir, prefix), 0o755); err != nil {
			return "", fmt.Errorf("failed to create prefix dir: %w", err)
		}
	}

	dest := filepath.Join(s.baseDir, filepath.FromSlash(filename))
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		logger.L().Error("failed to write image", zap.String("file", dest), zap.Error(err))
		return "", err
	}

	return filename, nil
}

func (s *diskStore) Remove(filename string) error {
	if filename == "" {
		return nil
	}

	dest := filepath.Join(s.baseDir, filepath.FromSlash(filename))
	err := os.Remove(dest)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		logger.L().Error("failed to remove image", zap.String("file", dest), zap.Error(err))
	}
	return err
}

// sanitizeName strips path separators and other hostile characters from the
// client-supplied filename before it touches the filesystem.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}

// stored filenames always use forward slashes so they serve as URL paths
func joinPrefix(prefix, name string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + name
}
