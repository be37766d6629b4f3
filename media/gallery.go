package media

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/repository"
	"gorm.io/gorm"
)

// Upload is the shape the gallery needs from the transport layer: a display
// filename plus the payload stream.
type Upload struct {
	Filename string
	Data     io.Reader
	AltText  *string
}

// Gallery keeps an owner's image set consistent: at most one main image per
// owner, and database rows in lockstep with stored files. Database state is
// authoritative; file deletions are best-effort.
//
// Consistency is per-request: two concurrent batches for the same owner can
// each observe no existing main image and both self-promote. There is no
// per-owner lock, matching the single-logical-writer assumption.
type Gallery struct {
	Assets   repository.AssetRepositoryInterface
	Uploader *Uploader
}

// NewGallery creates a new gallery engine.
func NewGallery(assets repository.AssetRepositoryInterface, uploader *Uploader) *Gallery {
	return &Gallery{Assets: assets, Uploader: uploader}
}

// subDirForOwner maps an owner ref to its storage subfolder.
func subDirForOwner(ownerRef string) string {
	if ownerRef == models.HeroGalleryOwner {
		return "gallery"
	}
	return "projects"
}

// UploadBatch stores each upload in input order and inserts one asset row per
// stored file. Files that fail validation or storage are skipped and the rest
// of the batch continues; only the stored subset is returned.
//
// Main-image promotion: whether a main image already exists is checked once,
// before the batch. The first successfully stored file becomes main when
// requestedMain is set (clearing the previous main atomically) or when the
// owner had no main image yet. Later files in the batch are never main, so a
// batch can promote at most one image.
func (g *Gallery) UploadBatch(ownerRef string, uploads []Upload, requestedMain bool) ([]models.MediaAsset, error) {
	hero := ownerRef == models.HeroGalleryOwner

	hasExistingMain := false
	if !hero {
		mainCount, err := g.Assets.CountMain(ownerRef)
		if err != nil {
			return nil, err
		}
		hasExistingMain = mainCount > 0
	}

	subDir := subDirForOwner(ownerRef)
	stored := []models.MediaAsset{}
	firstStored := true

	for _, upload := range uploads {
		desc, err := g.Uploader.StoreUpload(subDir, upload.Filename, upload.Data)
		if err != nil {
			log.Printf("media.gallery: skipping upload %q for %s: %v", upload.Filename, ownerRef, err)
			continue
		}

		asset := models.MediaAsset{
			OwnerRef:     ownerRef,
			RelativePath: desc.RelativePath,
			OriginalName: desc.OriginalName,
			AltText:      upload.AltText,
			DisplayOrder: len(stored),
			CreatedAt:    time.Now().Unix(),
		}

		shouldBeMain := !hero && firstStored && (requestedMain || !hasExistingMain)
		if shouldBeMain && hasExistingMain {
			// explicit main replaces the current one; clear and insert as a unit
			err = g.Assets.CreateMain(&asset)
		} else if shouldBeMain {
			asset.IsMain = true
			err = g.Assets.Create(&asset)
		} else {
			err = g.Assets.Create(&asset)
		}
		if err != nil {
			log.Printf("media.gallery: failed to record upload %q for %s: %v", upload.Filename, ownerRef, err)
			g.removeFileQuietly(desc.RelativePath)
			continue
		}

		if asset.IsMain {
			hasExistingMain = true
		}
		firstStored = false
		stored = append(stored, asset)
	}

	return stored, nil
}

// SetMain designates the given asset as the owner's main image. The previous
// main flag is cleared and restored as a unit: when the asset does not belong
// to the owner, gorm.ErrRecordNotFound is returned and nothing changes.
func (g *Gallery) SetMain(ownerRef string, assetID uint) error {
	return g.Assets.SetMain(ownerRef, assetID)
}

// DeleteAsset removes the asset row first, then best-effort deletes the
// underlying file. Deleting the current main image does not promote a
// replacement; the owner is left with no main image.
func (g *Gallery) DeleteAsset(ownerRef string, assetID uint) error {
	asset, err := g.Assets.GetByIDAndOwner(assetID, ownerRef)
	if err != nil {
		return err
	}

	if err := g.Assets.Delete(assetID, ownerRef); err != nil {
		return err
	}

	g.removeFileQuietly(asset.RelativePath)
	return nil
}

// DeleteOwner removes all of the owner's asset rows and best-effort deletes
// the corresponding files. Partial filesystem failures never roll back the
// row deletions.
func (g *Gallery) DeleteOwner(ownerRef string) error {
	assets, err := g.Assets.ListByOwner(ownerRef)
	if err != nil {
		return err
	}

	if err := g.Assets.DeleteByOwner(ownerRef); err != nil {
		return err
	}

	for _, asset := range assets {
		g.removeFileQuietly(asset.RelativePath)
	}
	return nil
}

// ListAssets returns the owner's image set, main image first.
func (g *Gallery) ListAssets(ownerRef string) ([]models.MediaAsset, error) {
	return g.Assets.ListByOwner(ownerRef)
}

// removeFileQuietly deletes a stored file, logging failures. An orphaned file
// is acceptable; an orphaned row is not.
func (g *Gallery) removeFileQuietly(relativePath string) {
	if err := g.Uploader.Store.Delete(relativePath); err != nil {
		log.Printf("media.gallery: Warning: could not delete file %s: %v", relativePath, err)
	}
}

// IsNotFound reports whether the error means the referenced row is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
