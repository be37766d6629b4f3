package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/s-steel/steelsitebackend/models"
)

// AssetRepository handles database operations for MediaAsset rows
type AssetRepository struct {
	DB *gorm.DB
}

// NewAssetRepository creates a new instance of AssetRepository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{DB: db}
}

// Create inserts an asset row as-is
func (r *AssetRepository) Create(asset *models.MediaAsset) error {
	if err := r.DB.Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create media asset for %s: %w", asset.OwnerRef, err)
	}
	return nil
}

// CreateMain clears is_main on all of the owner's rows and inserts the asset
// with is_main set, in one transaction.
func (r *AssetRepository) CreateMain(asset *models.MediaAsset) error {
	asset.IsMain = true
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MediaAsset{}).
			Where("owner_ref = ? AND is_main = ?", asset.OwnerRef, true).
			Update("is_main", false).Error; err != nil {
			return fmt.Errorf("failed to clear main flags for %s: %w", asset.OwnerRef, err)
		}
		if err := tx.Create(asset).Error; err != nil {
			return fmt.Errorf("failed to create main media asset for %s: %w", asset.OwnerRef, err)
		}
		return nil
	})
	return err
}

// GetByIDAndOwner retrieves an asset that belongs to the given owner
func (r *AssetRepository) GetByIDAndOwner(id uint, ownerRef string) (*models.MediaAsset, error) {
	var asset models.MediaAsset
	err := r.DB.Where("id = ? AND owner_ref = ?", id, ownerRef).First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get media asset %d for %s: %w", id, ownerRef, err)
	}
	return &asset, nil
}

// ListByOwner returns the owner's assets, main image first, then by display
// order and creation time
func (r *AssetRepository) ListByOwner(ownerRef string) ([]models.MediaAsset, error) {
	var assets []models.MediaAsset
	err := r.DB.Where("owner_ref = ?", ownerRef).
		Order("is_main DESC, display_order ASC, created_at ASC, id ASC").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list media assets for %s: %w", ownerRef, err)
	}
	return assets, nil
}

// CountMain returns the number of rows flagged as main for the owner
func (r *AssetRepository) CountMain(ownerRef string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.MediaAsset{}).
		Where("owner_ref = ? AND is_main = ?", ownerRef, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count main assets for %s: %w", ownerRef, err)
	}
	return count, nil
}

// SetMain clears is_main for the owner and sets it on the given asset. The
// clear is rolled back when the target row does not belong to the owner, and
// gorm.ErrRecordNotFound is returned.
func (r *AssetRepository) SetMain(ownerRef string, id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MediaAsset{}).
			Where("owner_ref = ?", ownerRef).
			Update("is_main", false).Error; err != nil {
			return fmt.Errorf("failed to clear main flags for %s: %w", ownerRef, err)
		}
		result := tx.Model(&models.MediaAsset{}).
			Where("id = ? AND owner_ref = ?", id, ownerRef).
			Update("is_main", true)
		if result.Error != nil {
			return fmt.Errorf("failed to set main asset %d for %s: %w", id, ownerRef, result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete removes a single asset row scoped to its owner
func (r *AssetRepository) Delete(id uint, ownerRef string) error {
	result := r.DB.Where("id = ? AND owner_ref = ?", id, ownerRef).Delete(&models.MediaAsset{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete media asset %d for %s: %w", id, ownerRef, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByOwner removes all asset rows for the owner
func (r *AssetRepository) DeleteByOwner(ownerRef string) error {
	if err := r.DB.Where("owner_ref = ?", ownerRef).Delete(&models.MediaAsset{}).Error; err != nil {
		return fmt.Errorf("failed to delete media assets for %s: %w", ownerRef, err)
	}
	return nil
}

// MainByOwnerRefs batch-loads the main asset for each owner ref
func (r *AssetRepository) MainByOwnerRefs(ownerRefs []string) (map[string]models.MediaAsset, error) {
	result := make(map[string]models.MediaAsset, len(ownerRefs))
	if len(ownerRefs) == 0 {
		return result, nil
	}

	var assets []models.MediaAsset
	err := r.DB.Where("owner_ref IN ? AND is_main = ?", ownerRefs, true).Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to batch-load main assets: %w", err)
	}
	for _, a := range assets {
		result[a.OwnerRef] = a
	}
	return result, nil
}
