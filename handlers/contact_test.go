package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/realtime"
	"github.com/s-steel/steelsitebackend/repository"
)

func newContactRouter(t *testing.T) *chi.Mux {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "handlers_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Contact{}))

	handler := NewContactHandler(repository.NewContactRepository(db), realtime.NewHub())

	r := chi.NewRouter()
	r.Post("/api/contact", handler.SubmitContact)
	r.Get("/api/admin/contacts", handler.ListContacts)
	r.Put("/api/admin/contacts/{contact_id}/status", handler.UpdateContactStatus)
	r.Delete("/api/admin/contacts/{contact_id}", handler.DeleteContact)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSubmitAndListContacts(t *testing.T) {
	r := newContactRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jane Doe","email":"jane@example.com","phone":"555","company":"Acme","message":"Quote please"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/admin/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane Doe", contacts[0].Name)
	assert.Equal(t, models.ContactStatusNew, contacts[0].Status)
}

func TestSubmitContactMissingFields(t *testing.T) {
	r := newContactRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/contact", `{"message":"anonymous"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, CodeInvalidArgument, resp.Errors[0].Code)
}

func TestUpdateContactStatus(t *testing.T) {
	r := newContactRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/api/admin/contacts/1/status", `{"status":"handled"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/admin/contacts", "")
	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "handled", contacts[0].Status)
}

func TestUpdateContactStatusNotFound(t *testing.T) {
	r := newContactRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/admin/contacts/42/status", `{"status":"handled"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, CodeNotFound, resp.Errors[0].Code)
}

func TestDeleteContact(t *testing.T) {
	r := newContactRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/admin/contacts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/admin/contacts/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
