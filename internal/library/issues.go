// Package library backs the librarian's book-issue section. Fines come from
// the backend and are displayed as sent; only the day-overdue count is
// recomputed client-side so it stays current between backend refreshes.
package library

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sdms-portal/internal/models"
)

const dueDateLayout = "2006-01-02"

// IssueSource is the slice of the API client this package needs.
type IssueSource interface {
	ListBookIssues(ctx context.Context) ([]models.Record, error)
	ReturnBook(ctx context.Context, issueID string) error
}

// Service lists and returns book issues.
type Service struct {
	source IssueSource
	logger *zap.Logger
	now    func() time.Time
}

// NewService builds a Service over the given issue source.
func NewService(source IssueSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger, now: time.Now}
}

// List fetches all issues and decorates each still-issued row with a
// recomputed days_overdue field.
func (s *Service) List(ctx context.Context) ([]models.Record, error) {
	issues, err := s.source.ListBookIssues(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now()
	for _, issue := range issues {
		issue["days_overdue"] = DaysOverdue(issue.String("due_date"), issue.String("status"), today)
	}
	return issues, nil
}

// Return marks one issue as returned.
func (s *Service) Return(ctx context.Context, issueID string) error {
	return s.source.ReturnBook(ctx, issueID)
}

// DaysOverdue computes whole days past the due date for a still-issued book.
// Returned or unparsable rows yield 0.
func DaysOverdue(dueDate, status string, today time.Time) int {
	if !strings.EqualFold(status, "Issued") {
		return 0
	}
	due, err := time.Parse(dueDateLayout, dueDate)
	if err != nil {
		return 0
	}
	days := int(midnight(today).Sub(midnight(due)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
