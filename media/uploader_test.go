package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploader(t *testing.T) *Uploader {
	t.Helper()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewUploader(store)
}

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 64 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestIsAllowedUpload(t *testing.T) {
	assert.True(t, IsAllowedUpload("photo.jpg"))
	assert.True(t, IsAllowedUpload("photo.JPEG"))
	assert.True(t, IsAllowedUpload("animation.gif"))
	assert.True(t, IsAllowedUpload("modern.webp"))
	assert.True(t, IsAllowedUpload("shot.PNG"))

	assert.False(t, IsAllowedUpload("document.pdf"))
	assert.False(t, IsAllowedUpload("archive.zip"))
	assert.False(t, IsAllowedUpload("noextension"))
	assert.False(t, IsAllowedUpload("sneaky.jpg.exe"))
}

func TestStoreUploadRejectsUnsupportedType(t *testing.T) {
	uploader := newTestUploader(t)

	_, err := uploader.StoreUpload("projects", "malware.exe", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestStoreUploadGeneratesUniqueNames(t *testing.T) {
	uploader := newTestUploader(t)

	first, err := uploader.StoreUpload("projects", "photo.jpg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := uploader.StoreUpload("projects", "photo.jpg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first.RelativePath, second.RelativePath)
	assert.Equal(t, "photo.jpg", first.OriginalName)
	assert.True(t, strings.HasSuffix(first.StorageName, "_photo.jpg"))
	assert.True(t, strings.HasPrefix(first.RelativePath, "projects/"))
}

func TestStoreUploadSanitizesFilename(t *testing.T) {
	uploader := newTestUploader(t)

	desc, err := uploader.StoreUpload("projects", "../../etc/my photo (1).png", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, desc.StorageName, "..")
	assert.NotContains(t, desc.StorageName, "/")
	assert.NotContains(t, desc.StorageName, " ")
	assert.True(t, strings.HasSuffix(desc.StorageName, ".png"))
}

func TestStoreUploadDownscalesLargeImages(t *testing.T) {
	uploader := newTestUploader(t)

	desc, err := uploader.StoreUpload("gallery", "big.png", encodePNG(t, 2400, 1400))
	require.NoError(t, err)

	fullPath, err := uploader.Store.FullPath(desc.RelativePath)
	require.NoError(t, err)
	img, err := imaging.Open(fullPath)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 1920)
	assert.LessOrEqual(t, bounds.Dy(), 1080)
	// aspect ratio preserved by Fit: 2400x1400 scales to fit the height first
	assert.Equal(t, 1080, bounds.Dy())
}

func TestStoreUploadKeepsSmallImages(t *testing.T) {
	uploader := newTestUploader(t)

	desc, err := uploader.StoreUpload("gallery", "small.png", encodePNG(t, 640, 480))
	require.NoError(t, err)

	fullPath, err := uploader.Store.FullPath(desc.RelativePath)
	require.NoError(t, err)
	img, err := imaging.Open(fullPath)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 640, bounds.Dx())
	assert.Equal(t, 480, bounds.Dy())
}

func TestStoreUploadKeepsUndecodableFile(t *testing.T) {
	uploader := newTestUploader(t)

	// normalization cannot decode this, but the upload itself must survive
	desc, err := uploader.StoreUpload("projects", "corrupt.jpg", strings.NewReader("not an image"))
	require.NoError(t, err)

	fullPath, err := uploader.Store.FullPath(desc.RelativePath)
	require.NoError(t, err)
	assert.FileExists(t, fullPath)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "photo.jpg", SanitizeFilename("photo.jpg"))
	assert.Equal(t, "my_photo__1_.png", SanitizeFilename("my photo (1).png"))
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "upload", SanitizeFilename("..."))
	assert.Equal(t, "upload", SanitizeFilename(""))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.FullPath("../outside.txt")
	assert.Error(t, err)

	_, err = store.Save("projects", "", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingFile(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(filepath.Join("projects", "ghost.jpg")))
}
