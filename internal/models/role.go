package models

// Role identifies the portal access level granted by the backend.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleFaculty    Role = "faculty"
	RoleStudent    Role = "student"
	RoleLibrarian  Role = "librarian"
)

// Known reports whether the role is one the portal recognises.
func (r Role) Known() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleFaculty, RoleStudent, RoleLibrarian:
		return true
	}
	return false
}

// Session is the active identity, persisted across restarts.
type Session struct {
	Role  Role   `json:"role"`
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// MenuEntry is one navigable dashboard section for a role. Ordering is
// significant: the first entry is the default active section.
type MenuEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}
