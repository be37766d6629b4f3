package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/s-steel/steelsitebackend/models"
	"github.com/s-steel/steelsitebackend/repository"
)

type EmployeeHandler struct {
	Employees repository.EmployeeRepositoryInterface
}

func NewEmployeeHandler(employees repository.EmployeeRepositoryInterface) *EmployeeHandler {
	return &EmployeeHandler{Employees: employees}
}

type employeePayload struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	ExperienceYears *int   `json:"experience_years"`
	Specialty       string `json:"specialty"`
	Bio             string `json:"bio"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	AvatarURL       string `json:"avatar_url"`
	DisplayOrder    int    `json:"display_order"`
	IsActive        *bool  `json:"is_active"`
}

func (p employeePayload) toModel() models.Employee {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return models.Employee{
		Name:            p.Name,
		Role:            p.Role,
		ExperienceYears: p.ExperienceYears,
		Specialty:       p.Specialty,
		Bio:             p.Bio,
		Email:           p.Email,
		Phone:           p.Phone,
		AvatarURL:       p.AvatarURL,
		DisplayOrder:    p.DisplayOrder,
		IsActive:        active,
	}
}

// ListPublicEmployees serves the active team members in display order, with
// the experience label and avatar fallback the public site renders directly.
func (h *EmployeeHandler) ListPublicEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Employees.ListActive()
	if err != nil {
		writeDomainError(w, err, "")
		return
	}

	items := make([]map[string]interface{}, len(employees))
	for i, e := range employees {
		experience := "N/A"
		if e.ExperienceYears != nil {
			experience = fmt.Sprintf("%d years", *e.ExperienceYears)
		}
		avatar := e.AvatarURL
		if avatar == "" {
			avatar = "👨‍💼"
		}
		items[i] = map[string]interface{}{
			"id":         e.ID,
			"name":       e.Name,
			"role":       e.Role,
			"experience": experience,
			"specialty":  e.Specialty,
			"avatar":     avatar,
			"verified":   true,
		}
	}
	writeJSON(w, http.StatusOK, items)
}

// ListEmployees returns every employee, active or not, for the admin panel.
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Employees.ListAll()
	if err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// CreateEmployee adds a team member.
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Missing required field: name")
		return
	}

	employee := payload.toModel()
	if err := h.Employees.Create(&employee); err != nil {
		writeDomainError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Employee created successfully",
		"id":      employee.ID,
	})
}

// UpdateEmployee replaces a team member's fields.
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "employee_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid employee id")
		return
	}

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid request body")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Missing required field: name")
		return
	}

	employee := payload.toModel()
	employee.ID = id
	if err := h.Employees.Update(&employee); err != nil {
		writeDomainError(w, err, "Employee not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Employee updated successfully"})
}

// DeleteEmployee removes a team member.
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "employee_id")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid employee id")
		return
	}

	if err := h.Employees.Delete(id); err != nil {
		writeDomainError(w, err, "Employee not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}
