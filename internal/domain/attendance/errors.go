package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("employee already checked in for this date")
	ErrAlreadyCheckedOut  = errors.New("attendance record already has a check-out time")
	ErrCheckOutBeforeIn   = errors.New("check-out time is before check-in time")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
