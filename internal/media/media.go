package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"ecommerce_backend/internal/logger"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Bounding dimensions applied to every stored product image.
const (
	resizeWidth  = 1280
	resizeHeight = 860
	jpegQuality  = 90
)

// ErrUnsupportedImage is returned when the upload is not a JPEG or PNG.
var ErrUnsupportedImage = errors.New("images only (jpeg, png)")

// Store saves uploaded images under a directory, resizing them to the
// bounding dimensions before persistence, and removes stored files
// best-effort when their owning record goes away.
type Store struct {
	dir string
	log *logger.Logger
}

func NewStore(dir string, log *logger.Logger) *Store {
	return &Store{dir: dir, log: log}
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// validate checks the declared content type and the file extension.
func validate(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedImage
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !allowedContentTypes[ct] {
		return ErrUnsupportedImage
	}
	return nil
}

// Save validates the upload, writes it to disk, resizes it and returns
// the stored path of the resized file. The raw upload is removed once
// the resized copy exists.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if err := validate(fh); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir %q: %w", s.dir, err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := uuid.NewString()
	rawPath := filepath.Join(s.dir, name+ext)

	if err := s.writeUpload(fh, rawPath); err != nil {
		return "", err
	}

	img, err := imaging.Open(rawPath)
	if err != nil {
		_ = os.Remove(rawPath)
		return "", fmt.Errorf("decode image %q: %w", fh.Filename, err)
	}

	resized := imaging.Resize(img, resizeWidth, resizeHeight, imaging.Lanczos)
	storedPath := filepath.Join(s.dir, name+"-resized"+ext)
	if err := imaging.Save(resized, storedPath, imaging.JPEGQuality(jpegQuality)); err != nil {
		_ = os.Remove(rawPath)
		return "", fmt.Errorf("save resized image: %w", err)
	}

	if err := os.Remove(rawPath); err != nil {
		s.log.Infow("media_raw_cleanup_failed", "path", rawPath, "err", err)
	}
	return storedPath, nil
}

func (s *Store) writeUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %q: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("write upload to %q: %w", dst, err)
	}
	return nil
}

// Remove deletes a stored file. Failures are logged and swallowed: the
// record mutation that triggered the cleanup has already committed.
func (s *Store) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		s.log.Errorw("media_file_delete_failed", "path", path, "err", err)
	}
}
