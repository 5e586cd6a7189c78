package api

import (
	"context"
	"net/http"

	"github.com/noah-isme/sdms-portal/internal/models"
)

// StudentProfile fetches one student's profile fields.
func (c *Client) StudentProfile(ctx context.Context, studentID string) (models.Record, error) {
	var out models.Record
	if err := c.do(ctx, "student_profile", http.MethodGet, "/api/student/"+studentID+"/profile", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StudentAttendance fetches one student's attendance rows, newest first.
func (c *Client) StudentAttendance(ctx context.Context, studentID string) ([]models.Record, error) {
	var out []models.Record
	if err := c.do(ctx, "student_attendance", http.MethodGet, "/api/student/"+studentID+"/attendance", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StudentResults fetches one student's exam results.
func (c *Client) StudentResults(ctx context.Context, studentID string) ([]models.Record, error) {
	var out []models.Record
	if err := c.do(ctx, "student_results", http.MethodGet, "/api/student/"+studentID+"/results", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
