package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records today's check-in for the caller. created is true when
	// the day row did not exist before.
	CheckIn(ctx context.Context) (resp AttendanceResponse, created bool, err error)

	// CheckOut completes today's record for the caller
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance lists the caller's records, newest first
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) ([]AttendanceResponse, error)

	// ListAttendance lists all records with filters (HR)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)

	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// UpdateAttendance edits a record by id, bypassing the check-in state machine (HR)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// OverrideDay creates or edits the record of an employee for a given day (HR)
	OverrideDay(ctx context.Context, req OverrideDayRequest) (AttendanceResponse, error)
}
