package infra

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// MediaStore writes uploaded files under a root directory and hands back
// root-relative paths for persistence.
type MediaStore struct {
	root string
}

func NewMediaStore(root string) (*MediaStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &MediaStore{root: root}, nil
}

// Save stores an uploaded file under subdir with a uuid-prefixed name so
// repeated uploads of the same filename never collide.
func (m *MediaStore) Save(file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(m.root, filepath.FromSlash(subdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	name := uuid.NewString() + "_" + filepath.Base(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}

	return path.Join(subdir, name), nil
}
