package media

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ErrUnsupportedType is returned when an upload's extension is not allowed.
var ErrUnsupportedType = errors.New("media: unsupported file type")

// allowedUploadExtensions is the set of image types accepted for upload
var allowedUploadExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

const (
	maxImageWidth  = 1920
	maxImageHeight = 1080
	jpegQuality    = 85
)

// AssetDescriptor describes a successfully stored upload. Whether the asset
// becomes the owner's main image is the gallery engine's decision, not the
// uploader's.
type AssetDescriptor struct {
	RelativePath string
	StorageName  string
	OriginalName string
}

// Uploader turns uploaded byte streams into normalized, uniquely named files
// on the store.
type Uploader struct {
	Store Store
}

// NewUploader creates a new Uploader backed by the given store.
func NewUploader(store Store) *Uploader {
	return &Uploader{Store: store}
}

// IsAllowedUpload checks the lowercase extension against the allowed set.
// Filenames without an extension are rejected.
func IsAllowedUpload(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	return allowedUploadExtensions[ext]
}

// StoreUpload validates and persists one upload under subDir, then normalizes
// the stored image in place. Normalization failures are logged and swallowed;
// the original file is kept as stored.
func (u *Uploader) StoreUpload(subDir, originalName string, data io.Reader) (AssetDescriptor, error) {
	if !IsAllowedUpload(originalName) {
		return AssetDescriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedType, originalName)
	}

	// collision avoidance relies on the UUID, not on a locked check against
	// existing files
	storageName := uuid.New().String() + "_" + SanitizeFilename(originalName)

	relativePath, err := u.Store.Save(subDir, storageName, data)
	if err != nil {
		return AssetDescriptor{}, err
	}

	if err := u.normalize(relativePath); err != nil {
		log.Printf("media.uploader: image normalization failed for %s: %v", relativePath, err)
	}

	return AssetDescriptor{
		RelativePath: relativePath,
		StorageName:  storageName,
		OriginalName: originalName,
	}, nil
}

// normalize downscales the stored file in place when it exceeds the dimension
// ceiling, preserving aspect ratio.
func (u *Uploader) normalize(relativePath string) error {
	fullPath, err := u.Store.FullPath(relativePath)
	if err != nil {
		return err
	}

	img, err := imaging.Open(fullPath)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxImageWidth && bounds.Dy() <= maxImageHeight {
		return nil
	}

	resized := imaging.Fit(img, maxImageWidth, maxImageHeight, imaging.Lanczos)
	if err := imaging.Save(resized, fullPath, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("failed to re-encode image: %w", err)
	}

	log.Printf("media.uploader: downscaled %s from %dx%d to fit %dx%d",
		relativePath, bounds.Dx(), bounds.Dy(), maxImageWidth, maxImageHeight)
	return nil
}

// SanitizeFilename strips path separators and unsafe characters from an
// uploaded filename while keeping it recognizable for display.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "\\", "_")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if sanitized == "" {
		sanitized = "upload"
	}
	return sanitized
}
