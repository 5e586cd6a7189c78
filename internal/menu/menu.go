// Package menu maps a role to its ordered dashboard navigation. The mapping
// is pure and deterministic; the first entry of every menu is the default
// active section.
package menu

import "github.com/noah-isme/sdms-portal/internal/models"

// Section keys shared with the router's view table.
const (
	SectionOverview   = "overview"
	SectionAdmins     = "admins"
	SectionFaculty    = "faculty"
	SectionStudents   = "students"
	SectionReports    = "reports"
	SectionSettings   = "settings"
	SectionMark       = "mark"
	SectionResults    = "results"
	SectionProfile    = "profile"
	SectionAttendance = "attendance"
	SectionIssues     = "issues"
)

var superAdminMenu = []models.MenuEntry{
	{Key: SectionOverview, Label: "Overview", Icon: "bar-chart"},
	{Key: SectionAdmins, Label: "Manage Admins", Icon: "shield"},
	{Key: SectionFaculty, Label: "Faculty", Icon: "users"},
	{Key: SectionStudents, Label: "Students", Icon: "graduation-cap"},
	{Key: SectionReports, Label: "Reports", Icon: "clipboard"},
	{Key: SectionSettings, Label: "Settings", Icon: "settings"},
}

var adminMenu = []models.MenuEntry{
	{Key: SectionOverview, Label: "Overview", Icon: "bar-chart"},
	{Key: SectionFaculty, Label: "Faculty", Icon: "users"},
	{Key: SectionStudents, Label: "Students", Icon: "graduation-cap"},
	{Key: SectionReports, Label: "Reports", Icon: "clipboard"},
}

var facultyMenu = []models.MenuEntry{
	{Key: SectionOverview, Label: "Overview", Icon: "bar-chart"},
	{Key: SectionMark, Label: "Mark Attendance", Icon: "clipboard"},
	{Key: SectionStudents, Label: "Student List", Icon: "users"},
	{Key: SectionResults, Label: "Results", Icon: "book"},
}

var studentMenu = []models.MenuEntry{
	{Key: SectionOverview, Label: "Overview", Icon: "bar-chart"},
	{Key: SectionProfile, Label: "Profile", Icon: "user"},
	{Key: SectionAttendance, Label: "Attendance", Icon: "clipboard"},
	{Key: SectionResults, Label: "Results", Icon: "book"},
}

var librarianMenu = []models.MenuEntry{
	{Key: SectionOverview, Label: "Overview", Icon: "bar-chart"},
	{Key: SectionIssues, Label: "Book Issues", Icon: "book"},
	{Key: SectionReports, Label: "Reports", Icon: "clipboard"},
}

// For returns the navigation for a role. Unknown roles deliberately fall back
// to the minimal student menu rather than an empty one.
func For(role models.Role) []models.MenuEntry {
	var src []models.MenuEntry
	switch role {
	case models.RoleSuperAdmin:
		src = superAdminMenu
	case models.RoleAdmin:
		src = adminMenu
	case models.RoleFaculty:
		src = facultyMenu
	case models.RoleLibrarian:
		src = librarianMenu
	default:
		src = studentMenu
	}
	out := make([]models.MenuEntry, len(src))
	copy(out, src)
	return out
}

// Contains reports whether the role's menu includes the section key.
func Contains(role models.Role, key string) bool {
	for _, entry := range For(role) {
		if entry.Key == key {
			return true
		}
	}
	return false
}
