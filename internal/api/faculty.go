package api

import (
	"context"
	"net/http"
)

// AttendancePayload is one sheet of attendance marks keyed by student id.
type AttendancePayload struct {
	Subject   string            `json:"subject"`
	Date      string            `json:"date"`
	StatusMap map[string]string `json:"statusMap"`
}

// ResultsPayload is one sheet of exam marks keyed by student id.
type ResultsPayload struct {
	Subject  string            `json:"subject"`
	ExamType string            `json:"examType"`
	MarksMap map[string]string `json:"marksMap"`
}

// MarkAttendance submits an attendance sheet for a subject and date.
func (c *Client) MarkAttendance(ctx context.Context, payload AttendancePayload) error {
	return c.do(ctx, "mark_attendance", http.MethodPost, "/api/faculty/attendance", payload, nil)
}

// SaveResults submits exam marks for a subject and exam type.
func (c *Client) SaveResults(ctx context.Context, payload ResultsPayload) error {
	return c.do(ctx, "save_results", http.MethodPost, "/api/faculty/results", payload, nil)
}
