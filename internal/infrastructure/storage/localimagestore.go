// Package storage keeps uploaded complaint images on local disk.
package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/civicdesk/civicdesk/internal/domain/complaint"
)

const imageSubdir = "complaint_images"

var (
	ErrUnsupportedImageType = fmt.Errorf("%w: unsupported image type", complaint.ErrInvalidImage)
	ErrImageTooLarge        = fmt.Errorf("%w: image exceeds maximum upload size", complaint.ErrInvalidImage)
)

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageStore saves an image and returns its reference path relative to the media root.
type ImageStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}

type LocalImageStore struct {
	root     string
	mediaURL string
	maxBytes int64
}

func NewLocalImageStore(root, mediaURL string, maxUploadMB int) *LocalImageStore {
	if maxUploadMB <= 0 {
		maxUploadMB = 5
	}
	return &LocalImageStore{
		root:     root,
		mediaURL: strings.TrimRight(mediaURL, "/"),
		maxBytes: int64(maxUploadMB) << 20,
	}
}

// Save checks the extension and the sniffed content type, then writes the file under
// a random name. Partially written files are removed on failure.
func (s *LocalImageStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	expected, ok := allowedExtensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImageType, ext)
	}

	br := bufio.NewReaderSize(r, 3072)
	head, err := br.Peek(3072)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return "", fmt.Errorf("read image header: %w", err)
	}
	if detected := mimetype.Detect(head); !detected.Is(expected) {
		return "", fmt.Errorf("%w: content is %s", ErrUnsupportedImageType, detected.String())
	}

	dir := filepath.Join(s.root, imageSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	name := uuid.NewString() + ext
	full := filepath.Join(dir, name)
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	written, copyErr := io.Copy(f, io.LimitReader(br, s.maxBytes+1))
	closeErr := f.Close()
	switch {
	case copyErr != nil:
		_ = os.Remove(full)
		return "", fmt.Errorf("write image: %w", copyErr)
	case written > s.maxBytes:
		_ = os.Remove(full)
		return "", ErrImageTooLarge
	case closeErr != nil:
		_ = os.Remove(full)
		return "", fmt.Errorf("close image: %w", closeErr)
	}

	if err := ctx.Err(); err != nil {
		_ = os.Remove(full)
		return "", err
	}
	return path.Join(imageSubdir, name), nil
}

// Delete removes a stored image. Missing files are not an error.
func (s *LocalImageStore) Delete(_ context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(ref))
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("invalid image reference: %s", ref)
	}
	if err := os.Remove(filepath.Join(s.root, clean)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

// URL maps a stored reference to its public URL under the media prefix.
func (s *LocalImageStore) URL(ref string) string {
	if ref == "" {
		return ""
	}
	return s.mediaURL + "/" + ref
}
