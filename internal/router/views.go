package router

import (
	"context"

	"github.com/noah-isme/sdms-portal/internal/dashboard"
	"github.com/noah-isme/sdms-portal/internal/listview"
	"github.com/noah-isme/sdms-portal/internal/menu"
	"github.com/noah-isme/sdms-portal/internal/models"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

// ContentKind says what an active section renders.
type ContentKind int

const (
	ContentOverview ContentKind = iota
	ContentList
	ContentProfile
	ContentAttendanceForm
	ContentResultsForm
	ContentStatic
)

// Content is the resolved content for the active (role, section) pair.
type Content struct {
	Kind ContentKind
	List *listview.View
	Text string
}

type viewKey struct {
	role    models.Role
	section string
}

type contentSpec struct {
	kind ContentKind
	list func(a *App, sess *models.Session) listview.Config
	text string
}

// contentTable maps (role, section) to its content factory. Each list
// factory declares the view's data source, id field, and display columns —
// the full set of data dependencies for that screen.
var contentTable = map[viewKey]contentSpec{
	{models.RoleSuperAdmin, menu.SectionOverview}: {kind: ContentOverview},
	{models.RoleSuperAdmin, menu.SectionAdmins}:   {kind: ContentList, list: adminListConfig},
	{models.RoleSuperAdmin, menu.SectionFaculty}:  {kind: ContentList, list: facultyListConfig},
	{models.RoleSuperAdmin, menu.SectionStudents}: {kind: ContentList, list: studentListConfig},
	{models.RoleSuperAdmin, menu.SectionReports}:  {kind: ContentStatic, text: "Open the faculty and student sections to review data, or export a list."},
	{models.RoleSuperAdmin, menu.SectionSettings}: {kind: ContentStatic, text: "Portal settings are managed via environment configuration."},

	{models.RoleAdmin, menu.SectionOverview}: {kind: ContentOverview},
	{models.RoleAdmin, menu.SectionFaculty}:  {kind: ContentList, list: facultyListConfig},
	{models.RoleAdmin, menu.SectionStudents}: {kind: ContentList, list: studentListConfig},
	{models.RoleAdmin, menu.SectionReports}:  {kind: ContentStatic, text: "Open the faculty and student sections to review data, or export a list."},

	{models.RoleFaculty, menu.SectionOverview}: {kind: ContentOverview},
	{models.RoleFaculty, menu.SectionMark}:     {kind: ContentAttendanceForm},
	{models.RoleFaculty, menu.SectionStudents}: {kind: ContentList, list: facultyStudentListConfig},
	{models.RoleFaculty, menu.SectionResults}:  {kind: ContentResultsForm},

	{models.RoleStudent, menu.SectionOverview}:   {kind: ContentOverview},
	{models.RoleStudent, menu.SectionProfile}:    {kind: ContentProfile},
	{models.RoleStudent, menu.SectionAttendance}: {kind: ContentList, list: studentAttendanceConfig},
	{models.RoleStudent, menu.SectionResults}:    {kind: ContentList, list: studentResultsConfig},

	{models.RoleLibrarian, menu.SectionOverview}: {kind: ContentOverview},
	{models.RoleLibrarian, menu.SectionIssues}:   {kind: ContentList, list: bookIssueListConfig},
	{models.RoleLibrarian, menu.SectionReports}:  {kind: ContentStatic, text: "Issue and fine aggregates are on the overview."},
}

// Content resolves the active section. List views are cached per open
// section and rebuilt after navigation.
func (a *App) Content() (Content, error) {
	sess := a.sessions.Current()
	if sess == nil {
		return Content{}, appErrors.Clone(appErrors.ErrValidation, "no active session")
	}

	a.mu.Lock()
	section := a.section
	a.mu.Unlock()

	role := sess.Role
	if !role.Known() {
		role = models.RoleStudent
	}
	spec, ok := contentTable[viewKey{role, section}]
	if !ok {
		return Content{}, appErrors.Clone(appErrors.ErrValidation, "no content for section "+section)
	}

	content := Content{Kind: spec.kind, Text: spec.text}
	if spec.kind == ContentList {
		a.mu.Lock()
		view, cached := a.views[section]
		if !cached {
			view = listview.New(spec.list(a, sess))
			a.views[section] = view
		}
		a.mu.Unlock()
		content.List = view
	}
	return content, nil
}

// Stats returns the dashboard adapter for the overview section.
func (a *App) Stats() *dashboard.Adapter { return a.stats }

// Profile fetches the student profile for the active session.
func (a *App) Profile(ctx context.Context) (models.Record, error) {
	sess := a.sessions.Current()
	if sess == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no active session")
	}
	return a.client.StudentProfile(ctx, sess.ID)
}

// ReturnBook marks a book issue returned and refreshes the issues view when
// it is open.
func (a *App) ReturnBook(ctx context.Context, issueID string) error {
	if err := a.issues.Return(ctx, issueID); err != nil {
		return err
	}
	return a.refreshView(ctx, menu.SectionIssues)
}

func adminListConfig(a *App, sess *models.Session) listview.Config {
	return listview.Config{
		Title:   "Admin List",
		IDField: "admin_id",
		Columns: []string{"admin_id", "name", "username", "dob"},
		Empty:   "No admins yet",
		Fetch:   a.client.ListAdmins,
		Update:  a.client.UpdateAdmin,
		Delete:  a.client.DeleteAdmin,
		Logger:  a.logger,
	}
}

func facultyListConfig(a *App, sess *models.Session) listview.Config {
	return listview.Config{
		Title:   "Faculty List",
		IDField: "faculty_id",
		Columns: []string{"faculty_id", "name", "department", "subject", "dob"},
		Empty:   "No faculty yet",
		Fetch:   a.client.ListFaculty,
		Update:  a.client.UpdateFaculty,
		Delete:  a.client.DeleteFaculty,
		Logger:  a.logger,
	}
}

func studentListConfig(a *App, sess *models.Session) listview.Config {
	return listview.Config{
		Title:   "Students",
		IDField: "student_id",
		Columns: []string{"student_id", "name", "roll_no", "department", "semester", "dob"},
		Empty:   "No students yet",
		Fetch:   a.client.ListStudents,
		Update:  a.client.UpdateStudent,
		Delete:  a.client.DeleteStudent,
		Logger:  a.logger,
	}
}

// facultyStudentListConfig is the read-only roster shown to faculty.
func facultyStudentListConfig(a *App, sess *models.Session) listview.Config {
	return listview.Config{
		Title:   "Student List",
		IDField: "student_id",
		Columns: []string{"student_id", "name", "department", "semester"},
		Empty:   "No students yet",
		Fetch:   a.client.ListStudents,
		Logger:  a.logger,
	}
}

func studentAttendanceConfig(a *App, sess *models.Session) listview.Config {
	studentID := sess.ID
	return listview.Config{
		Title:   "Attendance",
		IDField: "student_id",
		Columns: []string{"date", "subject", "status"},
		Empty:   "No records.",
		Fetch: func(ctx context.Context) ([]models.Record, error) {
			return a.client.StudentAttendance(ctx, studentID)
		},
		Logger: a.logger,
	}
}

func studentResultsConfig(a *App, sess *models.Session) listview.Config {
	studentID := sess.ID
	return listview.Config{
		Title:   "Results",
		IDField: "student_id",
		Columns: []string{"subject", "exam_type", "marks"},
		Empty:   "No results yet.",
		Fetch: func(ctx context.Context) ([]models.Record, error) {
			return a.client.StudentResults(ctx, studentID)
		},
		Logger: a.logger,
	}
}

func bookIssueListConfig(a *App, sess *models.Session) listview.Config {
	return listview.Config{
		Title:   "Book Issues",
		IDField: "issue_id",
		Columns: []string{"issue_id", "student_name", "book_title", "issue_date", "due_date", "status", "fine", "days_overdue"},
		Empty:   "No book issues yet",
		Fetch:   a.issues.List,
		Logger:  a.logger,
	}
}
