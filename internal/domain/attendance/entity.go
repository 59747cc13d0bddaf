package attendance

import (
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
)

const (
	// StandardArrivalHour is the last hour of day that still counts as on time.
	StandardArrivalHour = 9
	// StandardWorkdayMinutes is the threshold above which minutes are overtime.
	StandardWorkdayMinutes = 480
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
	StatusOnLeave Status = "On Leave"
)

var validStatuses = []string{string(StatusPresent), string(StatusLate), string(StatusAbsent), string(StatusOnLeave)}

// Counted reports whether the status counts as attended in rollups.
func (s Status) Counted() bool {
	return s == StatusPresent || s == StatusLate
}

// State is the per-day check-in state of an employee.
type State int

const (
	StateNoRecord State = iota
	StateCheckedIn
	StateCompleted
)

type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckIn      *time.Time
	CheckOut     *time.Time
	WorkMinutes  int
	ExtraMinutes int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	Employee *employee.Summary
}

// IsNew reports whether the row has not been persisted yet.
func (a *Attendance) IsNew() bool {
	return a.ID == ""
}

func (a *Attendance) State() State {
	switch {
	case a.CheckIn == nil:
		return StateNoRecord
	case a.CheckOut == nil:
		return StateCheckedIn
	default:
		return StateCompleted
	}
}

// CheckInAt records a check-in at now and derives the arrival status.
func (a *Attendance) CheckInAt(now time.Time) error {
	if a.CheckIn != nil {
		return ErrAlreadyCheckedIn
	}
	a.CheckIn = &now
	a.Status = StatusForCheckIn(now)
	return nil
}

// CheckOutAt records a check-out at now and computes worked and extra minutes.
func (a *Attendance) CheckOutAt(now time.Time) error {
	if a.CheckIn == nil {
		return ErrNotCheckedIn
	}
	if a.CheckOut != nil {
		return ErrAlreadyCheckedOut
	}
	a.CheckOut = &now
	a.RecomputeHours()
	return nil
}

// RecomputeHours derives worked and extra minutes from the check-in and
// check-out timestamps. It is a no-op unless both are set.
func (a *Attendance) RecomputeHours() {
	if a.CheckIn == nil || a.CheckOut == nil {
		return
	}
	a.WorkMinutes = WorkedMinutes(*a.CheckIn, *a.CheckOut)
	a.ExtraMinutes = ExtraMinutes(a.WorkMinutes)
}

// StatusForCheckIn compares only the hour component against the standard
// arrival hour: anything within the 9 o'clock hour is still Present.
func StatusForCheckIn(t time.Time) Status {
	if t.Hour() > StandardArrivalHour {
		return StatusLate
	}
	return StatusPresent
}

// WorkedMinutes is the floor of the elapsed minutes between in and out.
func WorkedMinutes(in, out time.Time) int {
	d := out.Sub(in)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

func ExtraMinutes(workMinutes int) int {
	if workMinutes <= StandardWorkdayMinutes {
		return 0
	}
	return workMinutes - StandardWorkdayMinutes
}
