package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/s-steel/steelsitebackend/settings"
)

type SettingsHandler struct {
	Settings *settings.Store
}

func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{Settings: store}
}

// companyView merges the company namespace with the footer namespace. Footer
// keys keep their full prefix on the wire; company keys are stripped.
func (h *SettingsHandler) companyView(defaults map[string]interface{}) (map[string]interface{}, error) {
	values, err := h.Settings.GetNamespace(settings.Company)
	if err != nil {
		return nil, err
	}

	footerValues, err := h.Settings.GetNamespace(settings.Footer)
	if err != nil {
		return nil, err
	}
	for key, value := range footerValues {
		values[settings.Footer.Prefix+key] = value
	}

	settings.ApplyDefaults(values, defaults)
	return values, nil
}

// GetCompanyInfo serves the public company and footer settings used by the
// site's footer and contact blocks.
func (h *SettingsHandler) GetCompanyInfo(w http.ResponseWriter, r *http.Request) {
	values, err := h.companyView(settings.CompanyInfoDefaults())
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, values)
}

// GetCompanySettings serves the full company settings for the admin panel.
func (h *SettingsHandler) GetCompanySettings(w http.ResponseWriter, r *http.Request) {
	values, err := h.companyView(settings.CompanySettingsDefaults())
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, values)
}

// UpdateCompanySettings upserts each submitted key. Keys already carrying a
// footer_ or dashboard_ prefix are stored as-is, everything else lands in the
// company namespace.
func (h *SettingsHandler) UpdateCompanySettings(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}

	if err := h.Settings.SetMany(settings.Company, payload); err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Company settings updated successfully"})
}

// GetDashboardSettings serves the admin dashboard layout settings.
func (h *SettingsHandler) GetDashboardSettings(w http.ResponseWriter, r *http.Request) {
	values, err := h.Settings.GetWithDefaults(settings.Dashboard, settings.DashboardDefaults())
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, values)
}

// UpdateDashboardSettings upserts each submitted key into the dashboard
// namespace.
func (h *SettingsHandler) UpdateDashboardSettings(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}

	if err := h.Settings.SetMany(settings.Dashboard, payload); err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Dashboard settings updated successfully"})
}
