package employee

import (
	"time"
)

type Employee struct {
	ID           string
	EmployeeCode string
	UserID       string
	Name         string
	Email        string
	Phone        string
	Department   string
	Role         string
	Status       Status
	JoinDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusOnLeave  Status = "On Leave"
	StatusInactive Status = "Inactive"
)

var validStatuses = []string{string(StatusActive), string(StatusOnLeave), string(StatusInactive)}

// Summary is the subset of employee fields embedded in attendance, leave and
// payroll listings.
type Summary struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department,omitempty"`
}

func (e Employee) Summary() Summary {
	return Summary{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Email:        e.Email,
		Department:   e.Department,
	}
}
