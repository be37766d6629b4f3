package repository

import (
	"github.com/s-steel/steelsitebackend/models"
)

// SettingRepositoryInterface defines the methods for settings row operations.
// Typed decoding lives in the settings package; this layer only moves raw
// string rows.
type SettingRepositoryInterface interface {
	ListByPrefix(prefix string) ([]models.Setting, error)
	Upsert(key, value string) error
	Get(key string) (*models.Setting, error)
}

// AssetRepositoryInterface defines the methods for media asset row operations
type AssetRepositoryInterface interface {
	Create(asset *models.MediaAsset) error
	// CreateMain atomically clears is_main on all of the owner's rows and
	// inserts the asset with is_main set.
	CreateMain(asset *models.MediaAsset) error
	GetByIDAndOwner(id uint, ownerRef string) (*models.MediaAsset, error)
	ListByOwner(ownerRef string) ([]models.MediaAsset, error)
	CountMain(ownerRef string) (int64, error)
	// SetMain atomically clears is_main for the owner and sets it on the given
	// asset; returns gorm.ErrRecordNotFound (rolling back the clear) when the
	// asset does not belong to the owner.
	SetMain(ownerRef string, id uint) error
	Delete(id uint, ownerRef string) error
	DeleteByOwner(ownerRef string) error
	// MainByOwnerRefs batch-loads the main asset per owner ref, for listings.
	MainByOwnerRefs(ownerRefs []string) (map[string]models.MediaAsset, error)
}

// ProjectFilter narrows the public project listing.
type ProjectFilter struct {
	FeaturedOnly bool
	Category     string
	Limit        int
}

// ProjectRepositoryInterface defines the methods for project data operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	GetActiveByID(id uint) (*models.Project, error)
	ListActive(filter ProjectFilter) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uint) error
}

// EmployeeRepositoryInterface defines the methods for employee data operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	ListActive() ([]models.Employee, error)
	ListAll() ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uint) error
}

// ContactRepositoryInterface defines the methods for contact inquiry operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	ListAll() ([]models.Contact, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

// ContactCardRepositoryInterface defines the methods for contact card operations
type ContactCardRepositoryInterface interface {
	Create(card *models.ContactCard) error
	GetByID(id uint) (*models.ContactCard, error)
	ListActive() ([]models.ContactCard, error)
	ListAll() ([]models.ContactCard, error)
	Update(card *models.ContactCard) error
	Delete(id uint) error
}

// UserRepositoryInterface defines the methods for admin user operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}
