package storage

import "errors"

var (
	ErrNotAnImage  = errors.New("only image files are allowed")
	ErrTooLarge    = errors.New("image exceeds the maximum allowed size")
	ErrEmptyUpload = errors.New("uploaded file is empty")
)

// ImageStore persists uploaded images and removes them again when the
// accompanying database write fails, so no orphaned files stay behind.
type ImageStore interface {
	Save(name string, data []byte) (string, error)
	SaveWithPrefix(prefix, name string, data []byte) (string, error)
	Remove(filename string) error
}
