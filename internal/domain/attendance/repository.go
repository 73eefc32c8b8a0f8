package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create relies on the (employee_id, date) unique constraint and returns
	// ErrAlreadyCheckedIn when a record for the day exists.
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// SetTimeOut records the check-out; it only touches rows whose time_out
	// is still NULL and returns ErrAlreadyCheckedOut otherwise.
	SetTimeOut(ctx context.Context, id string, timeOut time.Time) (Attendance, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	// MarkAbsent inserts absent records for active employees without any
	// attendance row on the given date. Used by the nightly job.
	MarkAbsent(ctx context.Context, date time.Time) (int64, error)
}
