package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this employee on this date")
	ErrAttendanceNotFound      = errors.New("attendance record not found")
)
