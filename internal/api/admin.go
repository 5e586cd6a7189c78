package api

import (
	"context"
	"net/http"

	"github.com/noah-isme/sdms-portal/internal/models"
)

// Admin-scoped entity management. The backend assigns ids (S_001, F_001,
// A_001 style) on creation; the client never invents them.

// ListFaculty returns all faculty records.
func (c *Client) ListFaculty(ctx context.Context) ([]models.Record, error) {
	var out []models.Record
	if err := c.do(ctx, "list_faculty", http.MethodGet, "/api/admin/faculty", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFaculty registers a faculty member and returns the creation ack.
func (c *Client) AddFaculty(ctx context.Context, payload models.Record) (models.Record, error) {
	var out models.Record
	if err := c.do(ctx, "add_faculty", http.MethodPost, "/api/admin/faculty", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateFaculty replaces the editable fields of one faculty record.
func (c *Client) UpdateFaculty(ctx context.Context, id string, payload models.Record) error {
	return c.do(ctx, "update_faculty", http.MethodPut, "/api/admin/faculty/"+id, payload, nil)
}

// DeleteFaculty removes one faculty record.
func (c *Client) DeleteFaculty(ctx context.Context, id string) error {
	return c.do(ctx, "delete_faculty", http.MethodDelete, "/api/admin/faculty/"+id, nil, nil)
}

// ListStudents returns all student records.
func (c *Client) ListStudents(ctx context.Context) ([]models.Record, error) {
	var out []models.Record
	if err := c.do(ctx, "list_students", http.MethodGet, "/api/admin/students", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddStudent registers a student and returns the creation ack.
func (c *Client) AddStudent(ctx context.Context, payload models.Record) (models.Record, error) {
	var out models.Record
	if err := c.do(ctx, "add_student", http.MethodPost, "/api/admin/students", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStudent replaces the editable fields of one student record.
func (c *Client) UpdateStudent(ctx context.Context, id string, payload models.Record) error {
	return c.do(ctx, "update_student", http.MethodPut, "/api/admin/students/"+id, payload, nil)
}

// DeleteStudent removes one student record.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, "delete_student", http.MethodDelete, "/api/admin/students/"+id, nil, nil)
}

// ListAdmins returns all admin records (the backend excludes the super admin).
func (c *Client) ListAdmins(ctx context.Context) ([]models.Record, error) {
	var out []models.Record
	if err := c.do(ctx, "list_admins", http.MethodGet, "/api/admin/admins", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddAdmin registers an admin. Only the super admin may call this; the
// backend enforces it via the caller_role field.
func (c *Client) AddAdmin(ctx context.Context, payload models.Record) (models.Record, error) {
	var out models.Record
	if err := c.do(ctx, "add_admin", http.MethodPost, "/api/admin/admins", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAdmin replaces the editable fields of one admin record.
func (c *Client) UpdateAdmin(ctx context.Context, id string, payload models.Record) error {
	return c.do(ctx, "update_admin", http.MethodPut, "/api/admin/admins/"+id, payload, nil)
}

// DeleteAdmin removes one admin record.
func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.do(ctx, "delete_admin", http.MethodDelete, "/api/admin/admins/"+id, nil, nil)
}
