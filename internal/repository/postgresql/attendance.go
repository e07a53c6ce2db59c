package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrlabs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrlabs/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	newAttendance.ID = id.String()

	query := `
		INSERT INTO attendances (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.Status,
	).Scan(&newAttendance.CreatedAt)

	if err != nil {
		// Unique violation on (employee_id, date) surfaces here; the service
		// maps it to the duplicate-attendance conflict.
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByEmployeeAndDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, day attendance.DayInterval) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendances
		WHERE employee_id = $1
		  AND date >= $2
		  AND date < $3
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, day.Start, day.End).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and day: %w", err)
	}

	return &att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, day *attendance.DayInterval) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at,
			   e.employee_code, e.full_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
	`
	args := []interface{}{employeeID}

	if day != nil {
		query += " AND a.date >= $2 AND a.date < $3"
		args = append(args, day.Start, day.End)
	}

	query += " ORDER BY a.date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by employee: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status, &att.CreatedAt,
			&att.EmployeeCode, &att.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return records, nil
}

// CountPresentByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountPresentByEmployee(ctx context.Context, employeeID string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE employee_id = $1
		  AND status = $2
	`

	var total int64
	if err := q.QueryRow(ctx, query, employeeID, attendance.StatusPresent).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count present days: %w", err)
	}

	return total, nil
}

// CountByStatusInDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatusInDay(ctx context.Context, status attendance.Status, day attendance.DayInterval) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE status = $1
		  AND date >= $2
		  AND date < $3
	`

	var total int64
	if err := q.QueryRow(ctx, query, status, day.Start, day.End).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}

	return total, nil
}
