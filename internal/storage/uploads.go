package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/shop-service/internal/config"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// PublicPrefix is the URL path uploaded files are served from.
const PublicPrefix = "/uploads"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageStore writes product images to a local directory.
type ImageStore struct {
	dir      string
	maxFiles int
	maxBytes int64
}

// NewImageStore creates the upload directory when missing.
func NewImageStore(cfg config.UploadConfig) (*ImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: cfg.Dir, maxFiles: cfg.MaxFiles, maxBytes: int64(cfg.MaxFileBytes)}, nil
}

// Dir returns the directory files are written to.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save validates and stores the files, returning their public paths in input order.
// Nothing is written unless every file passes validation.
func (s *ImageStore) Save(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > s.maxFiles {
		return nil, apperrors.NewValidationError(fmt.Sprintf("A maximum of %d images is allowed", s.maxFiles), nil)
	}
	for _, fh := range files {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !imageExtensions[ext] {
			return nil, apperrors.NewValidationError("Only image files are allowed", map[string]any{"file": fh.Filename})
		}
		if s.maxBytes > 0 && fh.Size > s.maxBytes {
			return nil, apperrors.NewValidationError("File too large", map[string]any{"file": fh.Filename, "max_bytes": s.maxBytes})
		}
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
		if err := s.write(fh, filepath.Join(s.dir, name)); err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		paths = append(paths, path.Join(PublicPrefix, name))
	}
	return paths, nil
}

func (s *ImageStore) write(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
