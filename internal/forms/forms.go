// Package forms holds the typed registration/edit payloads the portal
// submits. Validation is presence-only: business rules stay on the backend.
package forms

import (
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/sdms-portal/internal/models"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

var validate = validator.New()

// AdminForm registers or edits an admin account.
type AdminForm struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	DOB      string `json:"dob" validate:"required"`
}

// Payload builds the API body. Admin creation is super-admin only; the
// backend checks the caller_role field.
func (f AdminForm) Payload(callerRole models.Role) (models.Record, error) {
	if err := check(f); err != nil {
		return nil, err
	}
	return models.Record{
		"name":        f.Name,
		"username":    f.Username,
		"dob":         f.DOB,
		"caller_role": string(callerRole),
	}, nil
}

// FacultyForm registers or edits a faculty member.
type FacultyForm struct {
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	DOB        string `json:"dob" validate:"required"`
}

// Payload builds the API body.
func (f FacultyForm) Payload() (models.Record, error) {
	if err := check(f); err != nil {
		return nil, err
	}
	return models.Record{
		"name":       f.Name,
		"department": f.Department,
		"subject":    f.Subject,
		"dob":        f.DOB,
	}, nil
}

// StudentForm registers or edits a student.
type StudentForm struct {
	Name       string `json:"name" validate:"required"`
	RollNo     string `json:"roll_no" validate:"required"`
	Department string `json:"department" validate:"required"`
	Semester   string `json:"semester" validate:"required"`
	DOB        string `json:"dob" validate:"required"`
}

// Payload builds the API body.
func (f StudentForm) Payload() (models.Record, error) {
	if err := check(f); err != nil {
		return nil, err
	}
	return models.Record{
		"name":       f.Name,
		"roll_no":    f.RollNo,
		"department": f.Department,
		"semester":   f.Semester,
		"dob":        f.DOB,
	}, nil
}

// AttendanceSheet is one subject/date attendance submission.
type AttendanceSheet struct {
	Subject   string            `json:"subject" validate:"required"`
	Date      string            `json:"date" validate:"required"`
	StatusMap map[string]string `json:"statusMap" validate:"required,min=1"`
}

// ResultSheet is one subject/exam marks submission.
type ResultSheet struct {
	Subject  string            `json:"subject" validate:"required"`
	ExamType string            `json:"examType" validate:"required"`
	MarksMap map[string]string `json:"marksMap" validate:"required,min=1"`
}

// Check validates presence of the sheet fields.
func (s AttendanceSheet) Check() error { return check(s) }

// Check validates presence of the sheet fields.
func (s ResultSheet) Check() error { return check(s) }

func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	return nil
}
