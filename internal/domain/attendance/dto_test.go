package attendance

import (
	"errors"
	"testing"

	"github.com/hrlabs/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequest_Validate_Success(t *testing.T) {
	req := MarkAttendanceRequest{
		EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Date:       "2024-03-01",
		Status:     "Present",
	}
	assert.NoError(t, req.Validate())

	req.Status = "Absent"
	assert.NoError(t, req.Validate())
}

func TestMarkAttendanceRequest_Validate_MissingFields(t *testing.T) {
	req := MarkAttendanceRequest{}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "status")
}

func TestMarkAttendanceRequest_Validate_InvalidStatus(t *testing.T) {
	req := MarkAttendanceRequest{
		EmployeeID: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		Date:       "2024-03-01",
		Status:     "Late",
	}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, "status must be either Present or Absent", errs.ToMap()["status"])
}
