package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrlabs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrlabs/hrms-backend-go/internal/domain/employee"
	"github.com/hrlabs/hrms-backend-go/internal/pkg/dateutil"
	"github.com/hrlabs/hrms-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	loc *time.Location
}

// NewAttendanceService builds the attendance service. loc is the canonical
// timezone every calendar-day computation resolves against.
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		loc:                  loc,
	}
}

// resolveEmployee checks the reference format before hitting the database,
// so malformed ids surface as a client error rather than a lookup miss.
func (a *AttendanceServiceImpl) resolveEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	if !validator.IsValidUUID(employeeID) {
		return employee.Employee{}, employee.ErrInvalidEmployeeID
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	return emp, nil
}

func (a *AttendanceServiceImpl) parseDay(rawDate string) (attendance.DayInterval, error) {
	parsed, err := dateutil.ParseFlexible(rawDate, a.loc)
	if err != nil {
		return attendance.DayInterval{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be a valid calendar date (e.g. 2006-01-02)",
		}}
	}

	start, end := dateutil.DayBounds(parsed, a.loc)
	return attendance.DayInterval{Start: start, End: end}, nil
}

// MarkAttendance implements attendance.AttendanceService.
//
// The existence pre-check gives a friendly conflict without touching the
// constraint, but two requests for the same (employee, day) can both pass
// it. The unique constraint on the ledger is the arbiter: its violation is
// mapped to the same conflict error as the pre-check.
func (a *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.resolveEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day, err := a.parseDay(req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDay(ctx, emp.ID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceAlreadyMarked
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       day.Start,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceAlreadyMarked
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	created.EmployeeCode = &emp.EmployeeCode
	created.EmployeeName = &emp.FullName

	return toAttendanceResponse(created), nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string, date string) (attendance.EmployeeAttendanceResponse, error) {
	emp, err := a.resolveEmployee(ctx, employeeID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, err
	}

	var day *attendance.DayInterval
	if date != "" {
		parsed, err := a.parseDay(date)
		if err != nil {
			return attendance.EmployeeAttendanceResponse{}, err
		}
		day = &parsed
	}

	list, err := a.AttendanceRepository.ListByEmployee(ctx, emp.ID, day)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	// All-time Present total, never restricted by the day filter.
	totalPresent, err := a.AttendanceRepository.CountPresentByEmployee(ctx, emp.ID)
	if err != nil {
		return attendance.EmployeeAttendanceResponse{}, fmt.Errorf("failed to count present days: %w", err)
	}

	records := make([]attendance.AttendanceResponse, 0, len(list))
	for _, att := range list {
		records = append(records, toAttendanceResponse(att))
	}

	return attendance.EmployeeAttendanceResponse{
		Employee: attendance.EmployeeSummary{
			ID:           emp.ID,
			EmployeeCode: emp.EmployeeCode,
			FullName:     emp.FullName,
		},
		TotalPresentDays: totalPresent,
		Records:          records,
	}, nil
}

// GetDashboardSummary implements attendance.AttendanceService. Today is
// computed once in the canonical timezone and shared by both attendance
// counts.
func (a *AttendanceServiceImpl) GetDashboardSummary(ctx context.Context) (attendance.DashboardSummaryResponse, error) {
	start, end := dateutil.DayBounds(time.Now(), a.loc)
	today := attendance.DayInterval{Start: start, End: end}

	var summary attendance.DashboardSummaryResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := a.EmployeeRepository.Count(gCtx)
		if err != nil {
			return err
		}
		summary.TotalEmployees = total
		return nil
	})

	g.Go(func() error {
		present, err := a.AttendanceRepository.CountByStatusInDay(gCtx, attendance.StatusPresent, today)
		if err != nil {
			return err
		}
		summary.PresentToday = present
		return nil
	})

	g.Go(func() error {
		absent, err := a.AttendanceRepository.CountByStatusInDay(gCtx, attendance.StatusAbsent, today)
		if err != nil {
			return err
		}
		summary.AbsentToday = absent
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.DashboardSummaryResponse{}, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	return summary, nil
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	// Rows scanned from timestamptz carry the process-local zone; the
	// canonical day label only holds in UTC.
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeCode: att.EmployeeCode,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.In(time.UTC).Format("2006-01-02"),
		Status:       string(att.Status),
		CreatedAt:    att.CreatedAt.In(time.UTC).Format("2006-01-02 15:04:05"),
	}
}
