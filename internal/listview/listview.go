// Package listview is the generic paginated, searchable, editable list state
// machine behind every "manage X" screen. One View wraps one backend
// collection; it caches the fetched rows only while the view is open and
// refetches after every mutation rather than patching state optimistically.
package listview

import (
	"context"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/sdms-portal/internal/models"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

// PageSize is the fixed number of rows per page.
const PageSize = 5

// Fetcher loads the full collection.
type Fetcher func(ctx context.Context) ([]models.Record, error)

// Updater replaces the editable fields of the record with the given id.
type Updater func(ctx context.Context, id string, fields models.Record) error

// Deleter removes the record with the given id.
type Deleter func(ctx context.Context, id string) error

// Config declares one list view. Columns are the display columns; search
// matches against these only, and exports emit these only.
type Config struct {
	Title   string
	IDField string
	Columns []string
	Empty   string

	Fetch  Fetcher
	Update Updater
	Delete Deleter

	Logger *zap.Logger
}

// View tracks the list state. items == nil means loading, which is distinct
// from loaded-but-empty.
type View struct {
	cfg    Config
	logger *zap.Logger

	mu            sync.Mutex
	gen           uint64
	items         []models.Record
	loadErr       error
	searchTerm    string
	page          int
	pendingDelete models.Record
}

// New builds a View in the loading state; call Load to populate it.
func New(cfg Config) *View {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &View{cfg: cfg, logger: logger, page: 1}
}

// Title returns the configured view title.
func (v *View) Title() string { return v.cfg.Title }

// Columns returns the declared display columns.
func (v *View) Columns() []string { return v.cfg.Columns }

// Load fetches the collection. Each call supersedes any fetch still in
// flight: responses belonging to an older generation are discarded, so the
// most recently initiated fetch always wins.
func (v *View) Load(ctx context.Context) error {
	if v.cfg.Fetch == nil {
		return appErrors.Clone(appErrors.ErrInternal, "view has no fetcher")
	}

	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.items = nil
	v.loadErr = nil
	v.mu.Unlock()

	items, err := v.cfg.Fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		// A newer fetch was started while this one was in flight.
		v.logger.Debug("discarding stale list response", zap.String("view", v.cfg.Title))
		return nil
	}
	if err != nil {
		v.loadErr = err
		return err
	}
	if items == nil {
		items = []models.Record{}
	}
	v.items = items
	v.clampPageLocked()
	return nil
}

// Refresh is an explicit reload; state re-enters loading.
func (v *View) Refresh(ctx context.Context) error { return v.Load(ctx) }

// Loading reports whether rows have not arrived yet.
func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.items == nil && v.loadErr == nil
}

// Err returns the last load failure, if the view is in an error state.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadErr
}

// Search applies a case-insensitive substring filter across the declared
// columns and resets to the first page.
func (v *View) Search(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchTerm = term
	v.page = 1
}

// SearchTerm returns the active filter.
func (v *View) SearchTerm() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.searchTerm
}

// SetPage moves to the requested page, clamped to the valid range. It never
// refetches; pagination operates on the already-fetched filtered set.
func (v *View) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = page
	v.clampPageLocked()
}

// NextPage advances one page when possible.
func (v *View) NextPage() { v.SetPage(v.Page() + 1) }

// PrevPage goes back one page when possible.
func (v *View) PrevPage() { v.SetPage(v.Page() - 1) }

// Page returns the current page, always within [1, max(1, TotalPages)].
func (v *View) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// TotalPages returns ceil(filteredCount / PageSize), recomputed from the
// current items and search term.
func (v *View) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return totalPages(len(v.filteredLocked()))
}

// FilteredTotal returns the number of rows matching the active filter.
func (v *View) FilteredTotal() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.filteredLocked())
}

// Rows returns the visible page of the filtered set.
func (v *View) Rows() []models.Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	filtered := v.filteredLocked()
	start := (v.page - 1) * PageSize
	if start >= len(filtered) {
		return []models.Record{}
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Placeholder returns the message shown when no rows are visible: the
// configured empty-state message for a genuinely empty collection, or "No
// matches found" when a search term excluded everything.
func (v *View) Placeholder() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.items == nil {
		return ""
	}
	if len(v.filteredLocked()) > 0 {
		return ""
	}
	if v.searchTerm != "" {
		return "No matches found"
	}
	return v.cfg.Empty
}

func (v *View) filteredLocked() []models.Record {
	return Filter(v.items, v.searchTerm, v.cfg.Columns)
}

func (v *View) clampPageLocked() {
	max := totalPages(len(v.filteredLocked()))
	if max < 1 {
		max = 1
	}
	if v.page > max {
		v.page = max
	}
	if v.page < 1 {
		v.page = 1
	}
}

func totalPages(count int) int {
	return int(math.Ceil(float64(count) / float64(PageSize)))
}

// Filter returns the records where at least one of the declared columns
// contains term case-insensitively. An empty term returns items unchanged.
func Filter(items []models.Record, term string, columns []string) []models.Record {
	if term == "" || items == nil {
		return items
	}
	lower := strings.ToLower(term)
	out := make([]models.Record, 0, len(items))
	for _, item := range items {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(item.String(col)), lower) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
