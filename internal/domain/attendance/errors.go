package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("please check in first")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	// ErrAttendanceDayExists is returned by the repository when the
	// (employee, date) unique constraint rejects an insert.
	ErrAttendanceDayExists = errors.New("attendance record already exists for this day")
)
