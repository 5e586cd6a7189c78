// Package dashboard shapes backend aggregate stats into chart-ready view
// models. The mapping layer is pure; fetching is isolated in Adapter.
package dashboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/noah-isme/sdms-portal/internal/models"
)

// Tile is one headline metric.
type Tile struct {
	Label string
	Value string
}

// Point is one datum in a pie, bar, or line series.
type Point struct {
	Label string
	Value float64
}

// Overview is the chart-ready dashboard content for one role.
type Overview struct {
	Role  models.Role
	Tiles []Tile
	Pie   []Point
	Bars  []Point
	Trend []Point
}

// StudentOverview maps student stats into tiles, an attendance pie, and a
// recent-attendance trend (present days plot at 100, absent at 0).
func StudentOverview(stats *models.StudentStats) *Overview {
	present := math.Round(stats.AttendancePercentage)
	trend := make([]Point, 0, len(stats.RecentAttendance))
	for _, day := range stats.RecentAttendance {
		value := 0.0
		if strings.EqualFold(day.Status, "present") {
			value = 100
		}
		trend = append(trend, Point{Label: shortDate(day.Date), Value: value})
	}
	return &Overview{
		Role: models.RoleStudent,
		Tiles: []Tile{
			{Label: "Attendance", Value: fmt.Sprintf("%g%%", stats.AttendancePercentage)},
			{Label: "Avg Marks", Value: fmt.Sprintf("%g%%", stats.AvgMarks)},
			{Label: "Exams Taken", Value: fmt.Sprintf("%d", stats.TotalExams)},
		},
		Pie: []Point{
			{Label: "Present", Value: present},
			{Label: "Absent", Value: 100 - present},
		},
		Trend: trend,
	}
}

// FacultyOverview maps faculty stats into tiles and a per-subject
// performance bar series. Average performance is derived from the class
// aggregates since the backend does not send it.
func FacultyOverview(stats *models.TeacherStats) *Overview {
	bars := make([]Point, 0, len(stats.ClassPerformance))
	var sum float64
	for _, perf := range stats.ClassPerformance {
		label := perf.Subject
		if label == "" {
			label = perf.Class
		}
		bars = append(bars, Point{Label: label, Value: perf.AvgMarks})
		sum += perf.AvgMarks
	}
	avg := 0.0
	if len(stats.ClassPerformance) > 0 {
		avg = math.Round(sum / float64(len(stats.ClassPerformance)))
	}
	return &Overview{
		Role: models.RoleFaculty,
		Tiles: []Tile{
			{Label: "Total Students", Value: fmt.Sprintf("%d", stats.TotalStudents)},
			{Label: "Classes Assigned", Value: fmt.Sprintf("%d", stats.ClassesCount)},
			{Label: "Avg Performance", Value: fmt.Sprintf("%g%%", avg)},
		},
		Bars: bars,
	}
}

// AdminOverview maps institution stats into tiles, an attendance-rate gauge
// (rate vs remaining), a distribution bar series, and the optional
// enrollment growth trend. Admin and super admin share this shape.
func AdminOverview(role models.Role, stats *models.AdminStats) *Overview {
	bars := make([]Point, 0, len(stats.AttendanceDistribution))
	for _, d := range stats.AttendanceDistribution {
		bars = append(bars, Point{Label: d.Name, Value: d.Value})
	}
	trend := make([]Point, 0, len(stats.EnrollmentGrowth))
	for _, g := range stats.EnrollmentGrowth {
		trend = append(trend, Point{Label: g.Month, Value: float64(g.Students)})
	}
	return &Overview{
		Role: role,
		Tiles: []Tile{
			{Label: "Total Students", Value: fmt.Sprintf("%d", stats.TotalStudents)},
			{Label: "Total Faculty", Value: fmt.Sprintf("%d", stats.TotalTeachers)},
			{Label: "Attendance Rate", Value: fmt.Sprintf("%g%%", stats.AttendanceRate)},
		},
		Pie: []Point{
			{Label: "Rate", Value: stats.AttendanceRate},
			{Label: "Remaining", Value: 100 - stats.AttendanceRate},
		},
		Bars:  bars,
		Trend: trend,
	}
}

// LibrarianOverview maps circulation stats into tiles, an issued/returned
// pie, and an on-time vs overdue bar series. Fines are displayed as sent.
func LibrarianOverview(stats *models.LibrarianStats) *Overview {
	onTime := stats.TotalIssued - stats.OverdueBooks
	if onTime < 0 {
		onTime = 0
	}
	return &Overview{
		Role: models.RoleLibrarian,
		Tiles: []Tile{
			{Label: "Books Issued", Value: fmt.Sprintf("%d", stats.TotalIssued)},
			{Label: "Books Returned", Value: fmt.Sprintf("%d", stats.TotalReturned)},
			{Label: "Overdue Books", Value: fmt.Sprintf("%d", stats.OverdueBooks)},
			{Label: "Total Fines", Value: fmt.Sprintf("₹%g", stats.TotalFines)},
		},
		Pie: []Point{
			{Label: "Issued", Value: float64(stats.TotalIssued)},
			{Label: "Returned", Value: float64(stats.TotalReturned)},
		},
		Bars: []Point{
			{Label: "On Time", Value: float64(onTime)},
			{Label: "Overdue", Value: float64(stats.OverdueBooks)},
		},
	}
}

// shortDate trims "YYYY-MM-DD[ time]" down to "MM-DD" for trend labels.
func shortDate(raw string) string {
	if i := strings.IndexByte(raw, ' '); i >= 0 {
		raw = raw[:i]
	}
	if len(raw) > 5 && raw[4] == '-' {
		return raw[5:]
	}
	return raw
}
