package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sdms-portal/internal/models"
)

func TestStudentOverview(t *testing.T) {
	stats := &models.StudentStats{
		AttendancePercentage: 87.4,
		AvgMarks:             74,
		TotalExams:           6,
		RecentAttendance: []models.AttendanceDay{
			{Date: "2026-08-28", Status: "Present"},
			{Date: "2026-08-29 10:00:00", Status: "Absent"},
		},
	}

	overview := StudentOverview(stats)
	assert.Equal(t, models.RoleStudent, overview.Role)
	require.Len(t, overview.Tiles, 3)
	assert.Equal(t, "87.4%", overview.Tiles[0].Value)
	assert.Equal(t, "74%", overview.Tiles[1].Value)
	assert.Equal(t, "6", overview.Tiles[2].Value)

	require.Len(t, overview.Pie, 2)
	assert.Equal(t, 87.0, overview.Pie[0].Value)
	assert.Equal(t, 13.0, overview.Pie[1].Value)

	require.Len(t, overview.Trend, 2)
	assert.Equal(t, Point{Label: "08-28", Value: 100}, overview.Trend[0])
	assert.Equal(t, Point{Label: "08-29", Value: 0}, overview.Trend[1])
}

func TestFacultyOverview(t *testing.T) {
	stats := &models.TeacherStats{
		TotalStudents: 120,
		ClassesCount:  4,
		ClassPerformance: []models.ClassPerformance{
			{Subject: "Physics", AvgMarks: 72},
			{Class: "CS-3", AvgMarks: 65},
		},
	}

	overview := FacultyOverview(stats)
	assert.Equal(t, models.RoleFaculty, overview.Role)
	assert.Equal(t, "120", overview.Tiles[0].Value)
	assert.Equal(t, "4", overview.Tiles[1].Value)
	// round((72 + 65) / 2) = 69
	assert.Equal(t, "69%", overview.Tiles[2].Value)

	require.Len(t, overview.Bars, 2)
	assert.Equal(t, "Physics", overview.Bars[0].Label)
	assert.Equal(t, "CS-3", overview.Bars[1].Label)
}

func TestFacultyOverviewNoClasses(t *testing.T) {
	overview := FacultyOverview(&models.TeacherStats{})
	assert.Equal(t, "0%", overview.Tiles[2].Value)
	assert.Empty(t, overview.Bars)
}

func TestAdminOverview(t *testing.T) {
	stats := &models.AdminStats{
		TotalStudents:  500,
		TotalTeachers:  40,
		AttendanceRate: 91.5,
		AttendanceDistribution: []models.NamedValue{
			{Name: "CS", Value: 93},
			{Name: "EE", Value: 89},
		},
		EnrollmentGrowth: []models.GrowthPoint{
			{Month: "Jun", Students: 460},
			{Month: "Jul", Students: 500},
		},
	}

	overview := AdminOverview(models.RoleSuperAdmin, stats)
	assert.Equal(t, models.RoleSuperAdmin, overview.Role)
	assert.Equal(t, "91.5%", overview.Tiles[2].Value)

	require.Len(t, overview.Pie, 2)
	assert.Equal(t, 91.5, overview.Pie[0].Value)
	assert.Equal(t, 8.5, overview.Pie[1].Value)

	require.Len(t, overview.Bars, 2)
	require.Len(t, overview.Trend, 2)
	assert.Equal(t, Point{Label: "Jul", Value: 500}, overview.Trend[1])
}

func TestLibrarianOverview(t *testing.T) {
	stats := &models.LibrarianStats{
		TotalIssued:   12,
		TotalReturned: 5,
		OverdueBooks:  2,
		TotalFines:    350,
	}

	overview := LibrarianOverview(stats)
	assert.Equal(t, models.RoleLibrarian, overview.Role)
	require.Len(t, overview.Tiles, 4)
	assert.Equal(t, "12", overview.Tiles[0].Value)
	assert.Equal(t, "2", overview.Tiles[2].Value)
	assert.Equal(t, "₹350", overview.Tiles[3].Value)

	require.Len(t, overview.Pie, 2)
	assert.Equal(t, 17.0, overview.Pie[0].Value+overview.Pie[1].Value)

	require.Len(t, overview.Bars, 2)
	assert.Equal(t, Point{Label: "On Time", Value: 10}, overview.Bars[0])
	assert.Equal(t, Point{Label: "Overdue", Value: 2}, overview.Bars[1])
}

func TestLibrarianOverviewClampsOnTime(t *testing.T) {
	overview := LibrarianOverview(&models.LibrarianStats{TotalIssued: 1, OverdueBooks: 3})
	assert.Equal(t, 0.0, overview.Bars[0].Value)
}
