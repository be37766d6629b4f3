package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/repository"
)

func newTestGallery(t *testing.T) (*Gallery, *repository.AssetRepository, string) {
	t.Helper()
	dir := t.TempDir()

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, "gallery_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MediaAsset{}))

	storageDir := filepath.Join(dir, "uploads")
	store, err := NewLocalStorage(storageDir)
	require.NoError(t, err)

	assetRepo := repository.NewAssetRepository(db)
	return NewGallery(assetRepo, NewUploader(store)), assetRepo, storageDir
}

// uploads carry non-image bytes on purpose; normalization failures are
// swallowed and the file is kept as stored
func testUpload(name string) Upload {
	return Upload{Filename: name, Data: strings.NewReader("fake image bytes for " + name)}
}

func countMains(t *testing.T, repo *repository.AssetRepository, ownerRef string) int64 {
	t.Helper()
	count, err := repo.CountMain(ownerRef)
	require.NoError(t, err)
	return count
}

func TestUploadBatchFirstFileBecomesMain(t *testing.T) {
	gallery, repo, _ := newTestGallery(t)
	owner := models.ProjectOwnerRef(1)

	stored, err := gallery.UploadBatch(owner, []Upload{
		testUpload("a.jpg"), testUpload("b.jpg"), testUpload("c.jpg"),
	}, false)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	// no prior main image: only the first of the batch self-promotes
	assert.True(t, stored[0].IsMain)
	assert.False(t, stored[1].IsMain)
	assert.False(t, stored[2].IsMain)
	assert.EqualValues(t, 1, countMains(t, repo, owner))
}

func TestUploadBatchKeepsExistingMain(t *testing.T) {
	gallery, repo, _ := newTestGallery(t)
	owner := models.ProjectOwnerRef(2)

	first, err := gallery.UploadBatch(owner, []Upload{testUpload("first.jpg")}, false)
	require.NoError(t, err)
	require.True(t, first[0].IsMain)

	second, err := gallery.UploadBatch(owner, []Upload{testUpload("second.jpg")}, false)
	require.NoError(t, err)
	assert.False(t, second[0].IsMain)

	current, err := repo.GetByIDAndOwner(first[0].ID, owner)
	require.NoError(t, err)
	assert.True(t, current.IsMain)
	assert.EqualValues(t, 1, countMains(t, repo, owner))
}

func TestUploadBatchRequestedMainReplacesExisting(t *testing.T) {
	gallery, repo, _ := newTestGallery(t)
	owner := models.ProjectOwnerRef(3)

	first, err := gallery.UploadBatch(owner, []Upload{testUpload("old.jpg")}, false)
	require.NoError(t, err)
	require.True(t, first[0].IsMain)

	replacement, err := gallery.UploadBatch(owner, []Upload{
		testUpload("new.jpg"), testUpload("extra.jpg"),
	}, true)
	require.NoError(t, err)
	require.Len(t, replacement, 2)

	// only the first file of the batch takes over the main flag
	assert.True(t, replacement[0].IsMain)
	assert.False(t, replacement[1].IsMain)

	old, err := repo.GetByIDAndOwner(first[0].ID, owner)
	require.NoError(t, err)
	assert.False(t, old.IsMain)
	assert.EqualValues(t, 1, countMains(t, repo, owner))
}

func TestUploadBatchSkipsUnsupportedFiles(t *testing.T) {
	gallery, _, _ := newTestGallery(t)
	owner := models.ProjectOwnerRef(4)

	stored, err := gallery.UploadBatch(owner, []Upload{
		testUpload("notes.txt"), testUpload("photo.jpg"), testUpload("script.exe"),
	}, false)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "photo.jpg", stored[0].OriginalName)
	assert.True(t, stored[0].IsMain)
}

func TestHeroUploadsNeverMain(t *testing.T) {
	gallery, repo, _ := newTestGallery(t)

	stored, err := gallery.UploadBatch(models.HeroGalleryOwner, []Upload{
		testUpload("hero1.jpg"), testUpload("hero2.jpg"),
	}, true)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.False(t, stored[0].IsMain)
	assert.False(t, stored[1].IsMain)
	assert.EqualValues(t, 0, countMains(t, repo, models.HeroGalleryOwner))

	// hero files land in the gallery subfolder
	assert.True(t, strings.HasPrefix(stored[0].RelativePath, "gallery/"))
}

func TestSetMainMovesFlag(t *testing.T) {
	gallery, repo, _ := newTestGallery(t)
	owner := models.ProjectOwnerRef(5)

	stored, err := gallery.UploadBatch(owner, []Upload{
		testUpload("a.jpg"), testUpload("b.jpg"),
	}, false)
	require.NoError(t, err)

	require.NoError(t, gallery.SetMain(owner, stored[1].ID))

	a, err := repo.GetByIDAndOwner(stored[0].ID, owner)
	require.NoError(t, err)
	b, err := repo.GetByIDAndOwner(stored[1].ID, owner)
	require.NoError(t, err)
	assert.False(t, a.IsMain)
	assert.True(t, b.IsMain)
	assert.EqualValues(t, 1, countMains(t, repo, owner))
}

func TestSetMainUnknownAssetLeavesStateUntouched(t *testing.T) {
	gallery, repo, _ := newTestGallery(t)
	owner := models.ProjectOwnerRef(6)

	stored, err := gallery.UploadBatch(owner, []Upload{testUpload("a.jpg")}, false)
	require.NoError(t, err)
	require.True(t, stored[0].IsMain)

	err = gallery.SetMain(owner, stored[0].ID+999)
	assert.True(t, IsNotFound(err))

	// the clear must have been rolled back
	current, err := repo.GetByIDAndOwner(stored[0].ID, owner)
	require.NoError(t, err)
	assert.True(t, current.IsMain)
}

func TestSetMainScopedToOwner(t *testing.T) {
	gallery, _, _ := newTestGallery(t)
	ownerA := models.ProjectOwnerRef(7)
	ownerB := models.ProjectOwnerRef(8)

	storedB, err := gallery.UploadBatch(ownerB, []Upload{testUpload("b.jpg")}, false)
	require.NoError(t, err)

	err = gallery.SetMain(ownerA, storedB[0].ID)
	assert.True(t, IsNotFound(err))
}

func TestDeleteMainDoesNotPromoteReplacement(t *testing.T) {
	gallery, repo, _ := newTestGallery(t)
	owner := models.ProjectOwnerRef(9)

	stored, err := gallery.UploadBatch(owner, []Upload{
		testUpload("main.jpg"), testUpload("other.jpg"),
	}, false)
	require.NoError(t, err)
	require.True(t, stored[0].IsMain)

	require.NoError(t, gallery.DeleteAsset(owner, stored[0].ID))

	remaining, err := gallery.ListAssets(owner)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.False(t, remaining[0].IsMain)
	assert.EqualValues(t, 0, countMains(t, repo, owner))
}

func TestDeleteAssetRemovesFile(t *testing.T) {
	gallery, _, storageDir := newTestGallery(t)
	owner := models.ProjectOwnerRef(10)

	stored, err := gallery.UploadBatch(owner, []Upload{testUpload("a.jpg")}, false)
	require.NoError(t, err)

	fullPath := filepath.Join(storageDir, filepath.FromSlash(stored[0].RelativePath))
	_, err = os.Stat(fullPath)
	require.NoError(t, err)

	require.NoError(t, gallery.DeleteAsset(owner, stored[0].ID))

	_, err = os.Stat(fullPath)
	assert.True(t, os.IsNotExist(err))

	err = gallery.DeleteAsset(owner, stored[0].ID)
	assert.True(t, IsNotFound(err))
}

func TestDeleteAssetSurvivesMissingFile(t *testing.T) {
	gallery, _, storageDir := newTestGallery(t)
	owner := models.ProjectOwnerRef(11)

	stored, err := gallery.UploadBatch(owner, []Upload{testUpload("a.jpg")}, false)
	require.NoError(t, err)

	// something removed the file behind our back; the row is what counts
	fullPath := filepath.Join(storageDir, filepath.FromSlash(stored[0].RelativePath))
	require.NoError(t, os.Remove(fullPath))

	require.NoError(t, gallery.DeleteAsset(owner, stored[0].ID))

	assets, err := gallery.ListAssets(owner)
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestDeleteOwnerRemovesEverything(t *testing.T) {
	gallery, _, storageDir := newTestGallery(t)
	owner := models.ProjectOwnerRef(12)
	otherOwner := models.ProjectOwnerRef(13)

	stored, err := gallery.UploadBatch(owner, []Upload{
		testUpload("a.jpg"), testUpload("b.jpg"),
	}, false)
	require.NoError(t, err)

	kept, err := gallery.UploadBatch(otherOwner, []Upload{testUpload("keep.jpg")}, false)
	require.NoError(t, err)

	require.NoError(t, gallery.DeleteOwner(owner))

	assets, err := gallery.ListAssets(owner)
	require.NoError(t, err)
	assert.Empty(t, assets)

	for _, asset := range stored {
		_, err := os.Stat(filepath.Join(storageDir, filepath.FromSlash(asset.RelativePath)))
		assert.True(t, os.IsNotExist(err))
	}

	// the other owner's assets are untouched
	remaining, err := gallery.ListAssets(otherOwner)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept[0].ID, remaining[0].ID)
}

func TestListAssetsMainFirst(t *testing.T) {
	gallery, _, _ := newTestGallery(t)
	owner := models.ProjectOwnerRef(14)

	stored, err := gallery.UploadBatch(owner, []Upload{
		testUpload("a.jpg"), testUpload("b.jpg"), testUpload("c.jpg"),
	}, false)
	require.NoError(t, err)

	require.NoError(t, gallery.SetMain(owner, stored[2].ID))

	assets, err := gallery.ListAssets(owner)
	require.NoError(t, err)
	require.Len(t, assets, 3)
	assert.Equal(t, stored[2].ID, assets[0].ID)
	assert.True(t, assets[0].IsMain)
}
