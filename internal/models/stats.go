package models

// Stats payloads are backend-computed aggregates consumed read-only by the
// dashboard. The only client-side derivation is the day-overdue recomputation
// for library issues (see internal/library).

// AttendanceDay is one day in a student's recent attendance trail.
type AttendanceDay struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// StudentStats backs the student overview dashboard.
type StudentStats struct {
	AttendancePercentage float64         `json:"attendance_percentage"`
	AvgMarks             float64         `json:"avg_marks"`
	RecentAttendance     []AttendanceDay `json:"recent_attendance"`
	TotalExams           int             `json:"total_exams"`
}

// ClassPerformance is one subject/class aggregate for a faculty member.
type ClassPerformance struct {
	Class    string  `json:"class,omitempty"`
	Subject  string  `json:"subject,omitempty"`
	AvgMarks float64 `json:"avg_marks"`
}

// TeacherStats backs the faculty overview dashboard.
type TeacherStats struct {
	TotalStudents    int                `json:"total_students"`
	ClassesCount     int                `json:"classes_count"`
	ClassPerformance []ClassPerformance `json:"class_performance"`
}

// NamedValue is a generic name/value chart datum.
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GrowthPoint is one month in the cumulative enrollment series.
type GrowthPoint struct {
	Month    string `json:"month"`
	Students int    `json:"Students"`
}

// AdminStats backs the admin and super-admin overview dashboards.
type AdminStats struct {
	TotalStudents          int           `json:"total_students"`
	TotalTeachers          int           `json:"total_teachers"`
	AttendanceRate         float64       `json:"attendance_rate"`
	AttendanceDistribution []NamedValue  `json:"attendance_distribution"`
	EnrollmentGrowth       []GrowthPoint `json:"enrollment_growth,omitempty"`
}

// LibrarianStats backs the librarian overview dashboard.
type LibrarianStats struct {
	TotalIssued   int     `json:"total_issued"`
	TotalReturned int     `json:"total_returned"`
	OverdueBooks  int     `json:"overdue_books"`
	TotalFines    float64 `json:"total_fines"`
}
