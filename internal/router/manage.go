package router

import (
	"context"

	"github.com/noah-isme/sdms-portal/internal/api"
	"github.com/noah-isme/sdms-portal/internal/forms"
	"github.com/noah-isme/sdms-portal/internal/menu"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

// Registration and sheet submissions. Each one validates the form, sends it,
// and refreshes the affected list view when it is open; the backend assigns
// all ids.

// AddAdmin registers an admin account. The backend enforces that only the
// super admin may do this via the caller_role field.
func (a *App) AddAdmin(ctx context.Context, form forms.AdminForm) error {
	sess := a.sessions.Current()
	if sess == nil {
		return appErrors.Clone(appErrors.ErrValidation, "no active session")
	}
	payload, err := form.Payload(sess.Role)
	if err != nil {
		return err
	}
	if _, err := a.client.AddAdmin(ctx, payload); err != nil {
		return err
	}
	return a.refreshView(ctx, menu.SectionAdmins)
}

// AddFaculty registers a faculty member.
func (a *App) AddFaculty(ctx context.Context, form forms.FacultyForm) error {
	payload, err := form.Payload()
	if err != nil {
		return err
	}
	if _, err := a.client.AddFaculty(ctx, payload); err != nil {
		return err
	}
	return a.refreshView(ctx, menu.SectionFaculty)
}

// AddStudent registers a student.
func (a *App) AddStudent(ctx context.Context, form forms.StudentForm) error {
	payload, err := form.Payload()
	if err != nil {
		return err
	}
	if _, err := a.client.AddStudent(ctx, payload); err != nil {
		return err
	}
	return a.refreshView(ctx, menu.SectionStudents)
}

// MarkAttendance submits one attendance sheet.
func (a *App) MarkAttendance(ctx context.Context, sheet forms.AttendanceSheet) error {
	if err := sheet.Check(); err != nil {
		return err
	}
	return a.client.MarkAttendance(ctx, api.AttendancePayload{
		Subject:   sheet.Subject,
		Date:      sheet.Date,
		StatusMap: sheet.StatusMap,
	})
}

// SubmitResults submits one exam-marks sheet.
func (a *App) SubmitResults(ctx context.Context, sheet forms.ResultSheet) error {
	if err := sheet.Check(); err != nil {
		return err
	}
	return a.client.SaveResults(ctx, api.ResultsPayload{
		Subject:  sheet.Subject,
		ExamType: sheet.ExamType,
		MarksMap: sheet.MarksMap,
	})
}

// refreshView reloads the section's list view when it is currently open.
func (a *App) refreshView(ctx context.Context, section string) error {
	a.mu.Lock()
	view := a.views[section]
	a.mu.Unlock()
	if view == nil {
		return nil
	}
	return view.Refresh(ctx)
}
