package employee

import (
	"strings"

	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

const (
	DefaultPassword   = "password123"
	MinPasswordLength = 6
)

type EmployeeFilter struct {
	Status     *string
	Department *string
	Search     *string
}

type CreateEmployeeRequest struct {
	EmployeeCode *string `json:"employeeCode,omitempty"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Department   string  `json:"department"`
	Role         string  `json:"role"`
	Password     *string `json:"password,omitempty"`
}

func (r *CreateEmployeeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Department = strings.TrimSpace(r.Department)
	r.Role = strings.TrimSpace(r.Role)
	if r.EmployeeCode != nil {
		code := strings.TrimSpace(*r.EmployeeCode)
		r.EmployeeCode = &code
	}
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "Name is required")
	}
	if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "Valid email is required")
	}
	if validator.IsEmpty(r.Department) {
		errs.Add("department", "Department is required")
	}
	if validator.IsEmpty(r.Role) {
		errs.Add("role", "Role is required")
	}
	if r.Phone != "" && !validator.IsValidPhone(r.Phone) {
		errs.Add("phone", "Phone must contain digits only")
	}
	if r.Password != nil && len(*r.Password) < MinPasswordLength {
		errs.Add("password", "Password must be at least 6 characters")
	}
	if r.EmployeeCode != nil && validator.IsEmpty(*r.EmployeeCode) {
		errs.Add("employeeCode", "employeeCode must not be blank when provided")
	}

	return errs.Err()
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	Role       *string `json:"role,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "Name cannot be empty")
	}
	if r.Email != nil && !validator.IsValidEmail(strings.TrimSpace(*r.Email)) {
		errs.Add("email", "Valid email is required")
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs.Add("department", "Department cannot be empty")
	}
	if r.Role != nil && validator.IsEmpty(*r.Role) {
		errs.Add("role", "Role cannot be empty")
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhone(*r.Phone) {
		errs.Add("phone", "Phone must contain digits only")
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs.Add("status", "Invalid status")
	}

	return errs.Err()
}

// Apply merges the present fields into e.
func (r UpdateEmployeeRequest) Apply(e *Employee) {
	if r.Name != nil {
		e.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Phone != nil {
		e.Phone = strings.TrimSpace(*r.Phone)
	}
	if r.Department != nil {
		e.Department = strings.TrimSpace(*r.Department)
	}
	if r.Role != nil {
		e.Role = strings.TrimSpace(*r.Role)
	}
	if r.Status != nil {
		e.Status = Status(*r.Status)
	}
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employeeCode"`
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Department   string `json:"department"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	JoinDate     string `json:"joinDate"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type CreateEmployeeResponse struct {
	Employee            EmployeeResponse `json:"employee"`
	UsedDefaultPassword bool             `json:"-"`
}

func (e Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		UserID:       e.UserID,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		Department:   e.Department,
		Role:         e.Role,
		Status:       string(e.Status),
		JoinDate:     e.JoinDate.Format(validator.DateLayout),
		CreatedAt:    e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
