package attendance

import (
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time

	// DTO
	EmployeeCode *string
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// DayInterval is the half-open [Start, End) interval covering one canonical
// calendar day.
type DayInterval struct {
	Start time.Time
	End   time.Time
}
