package attendance

import (
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/validator"
)

const (
	MyAttendanceLimit   = 50
	ListAttendanceLimit = 100
)

type MyAttendanceFilter struct {
	StartDate *string
	EndDate   *string
}

func (f MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors
	validateDay(&errs, "startDate", f.StartDate)
	validateDay(&errs, "endDate", f.EndDate)
	return errs.Err()
}

type AttendanceFilter struct {
	EmployeeID *string
	Date       *string
	StartDate  *string
	EndDate    *string
}

func (f AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs.Add("employeeId", "employeeId must be a valid id")
	}
	validateDay(&errs, "date", f.Date)
	validateDay(&errs, "startDate", f.StartDate)
	validateDay(&errs, "endDate", f.EndDate)
	return errs.Err()
}

func validateDay(errs *validator.ValidationErrors, field string, v *string) {
	if v == nil {
		return
	}
	if _, ok := validator.ParseDay(*v, time.UTC); !ok {
		errs.Add(field, field+" must be YYYY-MM-DD or an ISO 8601 timestamp")
	}
}

// Fields an HR override may set. Timestamps are RFC3339.
type OverrideFields struct {
	Status     *string `json:"status,omitempty"`
	CheckIn    *string `json:"checkIn,omitempty"`
	CheckOut   *string `json:"checkOut,omitempty"`
	WorkHours  *int    `json:"workHours,omitempty"`
	ExtraHours *int    `json:"extraHours,omitempty"`
}

func (f OverrideFields) validate(errs *validator.ValidationErrors) {
	if f.Status != nil && !validator.IsInSlice(*f.Status, validStatuses) {
		errs.Add("status", "Invalid status")
	}
	var in, out time.Time
	var okIn, okOut bool
	if f.CheckIn != nil {
		if in, okIn = validator.IsValidDateTime(*f.CheckIn); !okIn {
			errs.Add("checkIn", "checkIn must be an ISO 8601 timestamp")
		}
	}
	if f.CheckOut != nil {
		if out, okOut = validator.IsValidDateTime(*f.CheckOut); !okOut {
			errs.Add("checkOut", "checkOut must be an ISO 8601 timestamp")
		}
	}
	if okIn && okOut && out.Before(in) {
		errs.Add("checkOut", "checkOut must not be before checkIn")
	}
	if f.WorkHours != nil && *f.WorkHours < 0 {
		errs.Add("workHours", "workHours must not be negative")
	}
	if f.ExtraHours != nil && *f.ExtraHours < 0 {
		errs.Add("extraHours", "extraHours must not be negative")
	}
}

func (f OverrideFields) empty() bool {
	return f.Status == nil && f.CheckIn == nil && f.CheckOut == nil && f.WorkHours == nil && f.ExtraHours == nil
}

// Apply merges the present fields into a. Hours are recomputed from the
// timestamps when either timestamp changes and no explicit minutes are given.
// Fields must have passed validation.
func (f OverrideFields) Apply(a *Attendance) {
	if f.Status != nil {
		a.Status = Status(*f.Status)
	}
	if f.CheckIn != nil {
		t, _ := validator.IsValidDateTime(*f.CheckIn)
		a.CheckIn = &t
	}
	if f.CheckOut != nil {
		t, _ := validator.IsValidDateTime(*f.CheckOut)
		a.CheckOut = &t
	}
	if (f.CheckIn != nil || f.CheckOut != nil) && f.WorkHours == nil {
		a.RecomputeHours()
	}
	if f.WorkHours != nil {
		a.WorkMinutes = *f.WorkHours
		a.ExtraMinutes = ExtraMinutes(a.WorkMinutes)
	}
	if f.ExtraHours != nil {
		a.ExtraMinutes = *f.ExtraHours
	}
}

type UpdateAttendanceRequest struct {
	ID string `json:"-"`
	OverrideFields
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.empty() {
		errs.Add("body", "at least one field must be provided")
	}
	r.validate(&errs)
	return errs.Err()
}

type OverrideDayRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	OverrideFields
}

func (r *OverrideDayRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(r.EmployeeID) {
		errs.Add("employeeId", "employeeId must be a valid id")
	}
	if _, ok := validator.ParseDay(r.Date, time.UTC); !ok {
		errs.Add("date", "date must be YYYY-MM-DD or an ISO 8601 timestamp")
	}
	if r.empty() {
		errs.Add("body", "at least one field must be provided")
	}
	r.validate(&errs)
	return errs.Err()
}

type AttendanceResponse struct {
	ID         string            `json:"id"`
	EmployeeID string            `json:"employeeId"`
	Employee   *employee.Summary `json:"employee,omitempty"`
	Date       string            `json:"date"`
	CheckIn    *string           `json:"checkIn"`
	CheckOut   *string           `json:"checkOut"`
	WorkHours  int               `json:"workHours"`
	ExtraHours int               `json:"extraHours"`
	Status     string            `json:"status"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func (a Attendance) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Employee:   a.Employee,
		Date:       a.Date.Format(validator.DateLayout),
		CheckIn:    timePtrToString(a.CheckIn),
		CheckOut:   timePtrToString(a.CheckOut),
		WorkHours:  a.WorkMinutes,
		ExtraHours: a.ExtraMinutes,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}
