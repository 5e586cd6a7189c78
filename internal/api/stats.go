package api

import (
	"context"
	"net/http"

	"github.com/noah-isme/sdms-portal/internal/models"
)

// StudentStats fetches the aggregate metrics behind the student overview.
func (c *Client) StudentStats(ctx context.Context, studentID string) (*models.StudentStats, error) {
	var out models.StudentStats
	if err := c.do(ctx, "student_stats", http.MethodGet, "/api/dashboard/student/"+studentID+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FacultyStats fetches the aggregate metrics behind the faculty overview.
func (c *Client) FacultyStats(ctx context.Context, facultyID string) (*models.TeacherStats, error) {
	var out models.TeacherStats
	if err := c.do(ctx, "faculty_stats", http.MethodGet, "/api/dashboard/faculty/"+facultyID+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminStats fetches institution-wide aggregates. Admin and super admin share
// this endpoint; no id is needed.
func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.do(ctx, "admin_stats", http.MethodGet, "/api/dashboard/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LibrarianStats fetches library circulation aggregates.
func (c *Client) LibrarianStats(ctx context.Context) (*models.LibrarianStats, error) {
	var out models.LibrarianStats
	if err := c.do(ctx, "librarian_stats", http.MethodGet, "/api/dashboard/librarian/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
