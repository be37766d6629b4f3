package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "settings_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	return NewStore(repository.NewSettingRepository(db))
}

func TestSetManyRoundTrip(t *testing.T) {
	store := newTestStore(t)

	err := store.SetMany(Company, map[string]interface{}{
		"name":    "Acme Steel",
		"founded": "1995",
	})
	require.NoError(t, err)

	values, err := store.GetNamespace(Company)
	require.NoError(t, err)
	assert.Equal(t, "Acme Steel", values["name"])
	// "1995" decodes as a JSON number on read
	assert.Equal(t, float64(1995), values["founded"])
}

func TestSetManyStructuredValues(t *testing.T) {
	store := newTestStore(t)

	locations := []interface{}{
		map[string]interface{}{"name": "Main Office", "phone": "+1 555"},
	}
	err := store.SetMany(Company, map[string]interface{}{
		"office_locations": locations,
	})
	require.NoError(t, err)

	values, err := store.GetNamespace(Company)
	require.NoError(t, err)

	decoded, ok := values["office_locations"].([]interface{})
	require.True(t, ok, "expected a decoded JSON array, got %T", values["office_locations"])
	require.Len(t, decoded, 1)
	first := decoded[0].(map[string]interface{})
	assert.Equal(t, "Main Office", first["name"])
}

func TestFooterCertificationBooleans(t *testing.T) {
	store := newTestStore(t)

	err := store.SetMany(Footer, map[string]interface{}{
		"certification_iso":  true,
		"certification_osha": false,
	})
	require.NoError(t, err)

	values, err := store.GetNamespace(Footer)
	require.NoError(t, err)
	assert.Equal(t, true, values["certification_iso"])
	assert.Equal(t, false, values["certification_osha"])

	// stored form is the literal strings true/false
	rows, err := store.Repo.ListByPrefix("footer_")
	require.NoError(t, err)
	stored := map[string]string{}
	for _, row := range rows {
		stored[row.Key] = row.Value
	}
	assert.Equal(t, "true", stored["footer_certification_iso"])
	assert.Equal(t, "false", stored["footer_certification_osha"])
}

func TestPassthroughPrefixes(t *testing.T) {
	store := newTestStore(t)

	// footer_ and dashboard_ keys written through the company namespace must
	// keep their own prefix instead of gaining company_
	err := store.SetMany(Company, map[string]interface{}{
		"name":              "Acme Steel",
		"footer_phone":      "+1 (555) 000-0000",
		"dashboard_widgets": "compact",
	})
	require.NoError(t, err)

	companyRows, err := store.Repo.ListByPrefix("company_")
	require.NoError(t, err)
	require.Len(t, companyRows, 1)
	assert.Equal(t, "company_name", companyRows[0].Key)

	footerValues, err := store.GetNamespace(Footer)
	require.NoError(t, err)
	assert.Equal(t, "+1 (555) 000-0000", footerValues["phone"])

	dashboardValues, err := store.GetNamespace(Dashboard)
	require.NoError(t, err)
	assert.Equal(t, "compact", dashboardValues["widgets"])
}

func TestGetWithDefaults(t *testing.T) {
	store := newTestStore(t)

	err := store.SetMany(Company, map[string]interface{}{"name": "Overridden"})
	require.NoError(t, err)

	values, err := store.GetWithDefaults(Company, map[string]interface{}{
		"name":  "Default Name",
		"phone": "+1 (555) 123-4567",
	})
	require.NoError(t, err)

	// stored value wins, default fills the gap
	assert.Equal(t, "Overridden", values["name"])
	assert.Equal(t, "+1 (555) 123-4567", values["phone"])
}

func TestSetManyEmptyPayload(t *testing.T) {
	store := newTestStore(t)

	err := store.SetMany(Company, map[string]interface{}{})
	assert.ErrorIs(t, err, ErrEmptyPayload)

	err = store.SetMany(Company, nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestUpsertOverwrites(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetMany(Company, map[string]interface{}{"name": "First"}))
	require.NoError(t, store.SetMany(Company, map[string]interface{}{"name": "Second"}))

	rows, err := store.Repo.ListByPrefix("company_name")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Second", rows[0].Value)
}

func TestNilValueStoredEmpty(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetMany(Company, map[string]interface{}{"tagline": nil}))

	rows, err := store.Repo.ListByPrefix("company_tagline")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Value)
}
