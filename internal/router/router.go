// Package router is the top-level stage machine: home, auth, and dashboard,
// with the dashboard tracking its active section. Section content comes from
// a (role, section) lookup table rather than conditional cascades.
package router

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/sdms-portal/internal/api"
	"github.com/noah-isme/sdms-portal/internal/dashboard"
	"github.com/noah-isme/sdms-portal/internal/library"
	"github.com/noah-isme/sdms-portal/internal/listview"
	"github.com/noah-isme/sdms-portal/internal/menu"
	"github.com/noah-isme/sdms-portal/internal/models"
	"github.com/noah-isme/sdms-portal/internal/session"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

// Stage is the top-level client view.
type Stage string

const (
	StageHome      Stage = "home"
	StageAuth      Stage = "auth"
	StageDashboard Stage = "dashboard"
)

// App wires the session store, API client, and per-section state into the
// stage machine.
type App struct {
	client   *api.Client
	sessions *session.Store
	stats    *dashboard.Adapter
	issues   *library.Service
	logger   *zap.Logger

	mu      sync.Mutex
	stage   Stage
	section string
	views   map[string]*listview.View
}

// Params groups App constructor dependencies.
type Params struct {
	Client   *api.Client
	Sessions *session.Store
	Logger   *zap.Logger
}

// NewApp constructs the app in the home stage; call Start to restore a
// persisted session.
func NewApp(params Params) *App {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		client:   params.Client,
		sessions: params.Sessions,
		stats:    dashboard.NewAdapter(params.Client, logger),
		issues:   library.NewService(params.Client, logger),
		logger:   logger,
		stage:    StageHome,
		views:    map[string]*listview.View{},
	}
}

// Start restores any persisted session. A restored session lands directly on
// the dashboard; absence lands on home.
func (a *App) Start() {
	if sess := a.sessions.Restore(); sess != nil {
		a.enterDashboard(sess)
		a.logger.Info("session restored",
			zap.String("role", string(sess.Role)),
			zap.String("id", sess.ID))
		return
	}
	a.setStage(StageHome, "")
}

// Stage returns the current top-level view.
func (a *App) Stage() Stage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stage
}

// Session returns the active identity, nil when logged out.
func (a *App) Session() *models.Session {
	return a.sessions.Current()
}

// Menu returns the navigation for the active role.
func (a *App) Menu() []models.MenuEntry {
	sess := a.sessions.Current()
	if sess == nil {
		return nil
	}
	return menu.For(sess.Role)
}

// ActiveSection returns the dashboard's active section key.
func (a *App) ActiveSection() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.section
}

// LoginClicked moves home → auth. With a session active it does nothing.
func (a *App) LoginClicked() {
	if a.sessions.Current() != nil {
		return
	}
	a.setStage(StageAuth, "")
}

// Login authenticates, persists the session, and enters the dashboard.
func (a *App) Login(ctx context.Context, req api.LoginRequest) (*models.Session, error) {
	sess, err := a.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	a.sessions.Login(sess.Role, sess.ID, sess.Email)
	a.enterDashboard(sess)
	a.logger.Info("logged in", zap.String("role", string(sess.Role)), zap.String("id", sess.ID))
	return sess, nil
}

// Logout clears the session and returns to home.
func (a *App) Logout() {
	a.sessions.Logout()
	a.setStage(StageHome, "")
	a.logger.Info("logged out")
}

// HomeClicked goes to the home stage when logged out. With a session active
// it resets the dashboard to its overview section: the portal never shows
// the landing page to an authenticated user.
func (a *App) HomeClicked() {
	sess := a.sessions.Current()
	if sess == nil {
		a.setStage(StageHome, "")
		return
	}
	a.enterDashboard(sess)
}

// SetSection activates a dashboard section. Unknown keys for the role are
// rejected; the previous section's cached rows are discarded.
func (a *App) SetSection(key string) error {
	sess := a.sessions.Current()
	if sess == nil {
		return appErrors.Clone(appErrors.ErrValidation, "no active session")
	}
	if !menu.Contains(sess.Role, key) {
		return appErrors.Clone(appErrors.ErrValidation, "unknown section "+key)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.section != key {
		// The per-view cache is transient: leaving a section drops its rows.
		delete(a.views, a.section)
	}
	a.section = key
	return nil
}

func (a *App) enterDashboard(sess *models.Session) {
	entries := menu.For(sess.Role)
	a.setStage(StageDashboard, entries[0].Key)
}

func (a *App) setStage(stage Stage, section string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stage = stage
	a.section = section
	a.views = map[string]*listview.View{}
}
