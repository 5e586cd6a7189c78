package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sdms-portal/internal/models"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

func TestAdminFormPayloadCarriesCallerRole(t *testing.T) {
	form := AdminForm{Name: "Priya", Username: "priya.k", DOB: "1990-04-12"}
	payload, err := form.Payload(models.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.Record{
		"name":        "Priya",
		"username":    "priya.k",
		"dob":         "1990-04-12",
		"caller_role": "super_admin",
	}, payload)
}

func TestAdminFormMissingField(t *testing.T) {
	_, err := AdminForm{Name: "Priya"}.Payload(models.RoleSuperAdmin)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "missing required fields", appErr.Message)
}

func TestFacultyFormPayload(t *testing.T) {
	form := FacultyForm{Name: "Dr. Rao", Department: "Physics", Subject: "Mechanics", DOB: "1980-01-01"}
	payload, err := form.Payload()
	require.NoError(t, err)
	assert.Equal(t, "Mechanics", payload.String("subject"))

	_, err = FacultyForm{Name: "Dr. Rao"}.Payload()
	require.Error(t, err)
}

func TestStudentFormPayload(t *testing.T) {
	form := StudentForm{Name: "Aarav", RollNo: "42", Department: "CS", Semester: "3", DOB: "2006-02-11"}
	payload, err := form.Payload()
	require.NoError(t, err)
	assert.Equal(t, "42", payload.String("roll_no"))

	_, err = StudentForm{Name: "Aarav", RollNo: "42"}.Payload()
	require.Error(t, err)
}

func TestAttendanceSheetCheck(t *testing.T) {
	sheet := AttendanceSheet{
		Subject:   "Physics",
		Date:      "2026-08-31",
		StatusMap: map[string]string{"S_001": "Present"},
	}
	require.NoError(t, sheet.Check())

	require.Error(t, AttendanceSheet{Subject: "Physics", Date: "2026-08-31"}.Check())
	require.Error(t, AttendanceSheet{Subject: "Physics", Date: "2026-08-31", StatusMap: map[string]string{}}.Check())
	require.Error(t, AttendanceSheet{StatusMap: map[string]string{"S_001": "Present"}}.Check())
}

func TestResultSheetCheck(t *testing.T) {
	sheet := ResultSheet{
		Subject:  "Physics",
		ExamType: "Midterm",
		MarksMap: map[string]string{"S_001": "82"},
	}
	require.NoError(t, sheet.Check())

	require.Error(t, ResultSheet{Subject: "Physics", ExamType: "Midterm"}.Check())
	require.Error(t, ResultSheet{Subject: "Physics", MarksMap: map[string]string{"S_001": "82"}}.Check())
}
