package api

import (
	"context"
	"net/http"

	"github.com/noah-isme/sdms-portal/internal/models"
)

// ListBookIssues returns all book issues with student and title details.
// The backend includes its own fine calculation per row.
func (c *Client) ListBookIssues(ctx context.Context) ([]models.Record, error) {
	var out []models.Record
	if err := c.do(ctx, "list_book_issues", http.MethodGet, "/api/librarian/book-issues", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReturnBook marks one issue as returned.
func (c *Client) ReturnBook(ctx context.Context, issueID string) error {
	return c.do(ctx, "return_book", http.MethodPost, "/api/librarian/return-book/"+issueID, nil, nil)
}
