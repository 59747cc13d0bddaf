package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrLeaveOverlap          = errors.New("leave request overlaps an existing pending or approved leave")
	ErrLeaveAccessDenied     = errors.New("not allowed to view this leave request")
)
