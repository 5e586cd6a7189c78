package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sdms-portal/internal/models"
)

func keys(entries []models.MenuEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Key)
	}
	return out
}

func TestForPerRole(t *testing.T) {
	tests := []struct {
		role models.Role
		want []string
	}{
		{models.RoleSuperAdmin, []string{SectionOverview, SectionAdmins, SectionFaculty, SectionStudents, SectionReports, SectionSettings}},
		{models.RoleAdmin, []string{SectionOverview, SectionFaculty, SectionStudents, SectionReports}},
		{models.RoleFaculty, []string{SectionOverview, SectionMark, SectionStudents, SectionResults}},
		{models.RoleStudent, []string{SectionOverview, SectionProfile, SectionAttendance, SectionResults}},
		{models.RoleLibrarian, []string{SectionOverview, SectionIssues, SectionReports}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, keys(For(tt.role)))
		})
	}
}

func TestEveryMenuStartsWithOverview(t *testing.T) {
	for _, role := range []models.Role{models.RoleSuperAdmin, models.RoleAdmin, models.RoleFaculty, models.RoleStudent, models.RoleLibrarian} {
		entries := For(role)
		require.NotEmpty(t, entries)
		assert.Equal(t, SectionOverview, entries[0].Key)
	}
}

func TestForUnknownRoleFallsBackToStudent(t *testing.T) {
	assert.Equal(t, keys(For(models.RoleStudent)), keys(For(models.Role("intruder"))))
}

func TestForReturnsACopy(t *testing.T) {
	entries := For(models.RoleAdmin)
	entries[0].Key = "tampered"
	assert.Equal(t, SectionOverview, For(models.RoleAdmin)[0].Key)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(models.RoleSuperAdmin, SectionAdmins))
	assert.False(t, Contains(models.RoleAdmin, SectionAdmins))
	assert.False(t, Contains(models.RoleStudent, SectionIssues))
	assert.True(t, Contains(models.RoleLibrarian, SectionIssues))
}
