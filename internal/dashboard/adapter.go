package dashboard

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/sdms-portal/internal/models"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

// StatsSource is the slice of the API client the adapter needs.
type StatsSource interface {
	StudentStats(ctx context.Context, studentID string) (*models.StudentStats, error)
	FacultyStats(ctx context.Context, facultyID string) (*models.TeacherStats, error)
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	LibrarianStats(ctx context.Context) (*models.LibrarianStats, error)
}

// Adapter fetches the one stats payload appropriate for (role, id) and holds
// the resulting overview. Loading is explicit and distinct from loaded; a
// failed fetch leaves a retryable error state rather than crashing the view.
type Adapter struct {
	source StatsSource
	logger *zap.Logger

	mu       sync.Mutex
	gen      uint64
	overview *Overview
	fetchErr error
	loading  bool
}

// NewAdapter builds an Adapter over the given stats source.
func NewAdapter(source StatsSource, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{source: source, logger: logger}
}

// Fetch loads stats for the role. Like list fetches, the most recently
// initiated fetch wins: a superseded response is discarded, not applied.
func (a *Adapter) Fetch(ctx context.Context, role models.Role, id string) (*Overview, error) {
	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.loading = true
	a.fetchErr = nil
	a.overview = nil
	a.mu.Unlock()

	overview, err := a.fetchOverview(ctx, role, id)

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.gen {
		a.logger.Debug("discarding stale stats response", zap.String("role", string(role)))
		return nil, nil
	}
	a.loading = false
	if err != nil {
		a.fetchErr = err
		a.logger.Warn("stats fetch failed", zap.String("role", string(role)), zap.Error(err))
		return nil, err
	}
	a.overview = overview
	return overview, nil
}

// Retry re-runs the last role's fetch; it is just a fresh user-initiated
// Fetch, never automatic.
func (a *Adapter) Retry(ctx context.Context, role models.Role, id string) (*Overview, error) {
	return a.Fetch(ctx, role, id)
}

// Snapshot returns the current state: the overview when loaded, the error
// when failed, and whether a fetch is still in flight.
func (a *Adapter) Snapshot() (*Overview, error, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.overview, a.fetchErr, a.loading
}

func (a *Adapter) fetchOverview(ctx context.Context, role models.Role, id string) (*Overview, error) {
	switch role {
	case models.RoleStudent:
		stats, err := a.source.StudentStats(ctx, id)
		if err != nil {
			return nil, err
		}
		return StudentOverview(stats), nil
	case models.RoleFaculty:
		stats, err := a.source.FacultyStats(ctx, id)
		if err != nil {
			return nil, err
		}
		return FacultyOverview(stats), nil
	case models.RoleAdmin, models.RoleSuperAdmin:
		stats, err := a.source.AdminStats(ctx)
		if err != nil {
			return nil, err
		}
		return AdminOverview(role, stats), nil
	case models.RoleLibrarian:
		stats, err := a.source.LibrarianStats(ctx)
		if err != nil {
			return nil, err
		}
		return LibrarianOverview(stats), nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "no dashboard for role "+string(role))
	}
}
