package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sdms-portal/internal/api"
	"github.com/noah-isme/sdms-portal/internal/menu"
	"github.com/noah-isme/sdms-portal/internal/models"
	"github.com/noah-isme/sdms-portal/internal/session"
)

// fakeBackend is the minimal portal API used by the router tests.
type fakeBackend struct {
	loginOK    bool
	loginRole  models.Role
	loginError string
	students   []gin.H
	issues     []gin.H
	returns    []string
	created    []map[string]any
	sheets     []map[string]any
}

func (b *fakeBackend) register(r *gin.Engine) {
	r.POST("/api/auth/login", func(c *gin.Context) {
		var req api.LoginRequest
		_ = c.ShouldBindJSON(&req)
		if !b.loginOK {
			c.JSON(http.StatusOK, api.LoginResponse{OK: false, Error: b.loginError})
			return
		}
		role := b.loginRole
		if role == "" {
			role = req.Role
		}
		c.JSON(http.StatusOK, api.LoginResponse{OK: true, Role: role, ID: req.ID})
	})
	r.GET("/api/admin/students", func(c *gin.Context) {
		c.JSON(http.StatusOK, b.students)
	})
	record := func(c *gin.Context) {
		var body map[string]any
		_ = c.ShouldBindJSON(&body)
		b.created = append(b.created, body)
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	}
	r.POST("/api/admin/students", record)
	r.POST("/api/admin/faculty", record)
	r.POST("/api/admin/admins", record)
	sheet := func(c *gin.Context) {
		var body map[string]any
		_ = c.ShouldBindJSON(&body)
		b.sheets = append(b.sheets, body)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
	r.POST("/api/faculty/attendance", sheet)
	r.POST("/api/faculty/results", sheet)
	r.GET("/api/librarian/book-issues", func(c *gin.Context) {
		c.JSON(http.StatusOK, b.issues)
	})
	r.POST("/api/librarian/return-book/:id", func(c *gin.Context) {
		b.returns = append(b.returns, c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func newTestApp(t *testing.T, backend *fakeBackend) (*App, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	backend.register(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client := api.NewClient(api.Options{BaseURL: server.URL})
	sessions := session.NewStore(filepath.Join(t.TempDir(), "session.json"), nil)
	app := NewApp(Params{Client: client, Sessions: sessions})
	app.Start()
	return app, sessions
}

func TestStartWithoutSessionLandsOnHome(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{})
	assert.Equal(t, StageHome, app.Stage())
	assert.Nil(t, app.Session())
	assert.Nil(t, app.Menu())
}

func TestStartRestoresPersistedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	session.NewStore(path, nil).Login(models.RoleLibrarian, "L_001", "")

	client := api.NewClient(api.Options{BaseURL: "http://localhost:0"})
	app := NewApp(Params{Client: client, Sessions: session.NewStore(path, nil)})
	app.Start()

	assert.Equal(t, StageDashboard, app.Stage())
	assert.Equal(t, menu.SectionOverview, app.ActiveSection())
	require.NotNil(t, app.Session())
	assert.Equal(t, models.RoleLibrarian, app.Session().Role)
}

func TestLoginFlow(t *testing.T) {
	app, sessions := newTestApp(t, &fakeBackend{loginOK: true})

	app.LoginClicked()
	assert.Equal(t, StageAuth, app.Stage())

	sess, err := app.Login(context.Background(), api.LoginRequest{Role: models.RoleStudent, ID: "S_001", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, sess.Role)

	assert.Equal(t, StageDashboard, app.Stage())
	assert.Equal(t, menu.SectionOverview, app.ActiveSection())
	entries := app.Menu()
	require.NotEmpty(t, entries)
	assert.Equal(t, menu.SectionOverview, entries[0].Key)

	// The identity is persisted for the next start.
	require.NotNil(t, sessions.Current())
}

func TestLoginFailureStaysOnAuth(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{loginOK: false, loginError: "invalid credentials"})

	app.LoginClicked()
	_, err := app.Login(context.Background(), api.LoginRequest{Role: models.RoleStudent, ID: "S_001", Password: "bad"})
	require.EqualError(t, err, "invalid credentials")
	assert.Equal(t, StageAuth, app.Stage())
	assert.Nil(t, app.Session())
}

func TestLogoutReturnsHome(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{loginOK: true})
	_, err := app.Login(context.Background(), api.LoginRequest{Role: models.RoleAdmin, ID: "A_001", Password: "pw"})
	require.NoError(t, err)

	app.Logout()
	assert.Equal(t, StageHome, app.Stage())
	assert.Nil(t, app.Session())
}

func TestLoginClickedIgnoredWhileAuthenticated(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{loginOK: true})
	_, err := app.Login(context.Background(), api.LoginRequest{Role: models.RoleAdmin, ID: "A_001", Password: "pw"})
	require.NoError(t, err)

	app.LoginClicked()
	assert.Equal(t, StageDashboard, app.Stage())
}

func TestHomeClickedResetsDashboardWhenAuthenticated(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{loginOK: true})
	_, err := app.Login(context.Background(), api.LoginRequest{Role: models.RoleAdmin, ID: "A_001", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, app.SetSection(menu.SectionStudents))

	app.HomeClicked()
	assert.Equal(t, StageDashboard, app.Stage())
	assert.Equal(t, menu.SectionOverview, app.ActiveSection())

	app.Logout()
	app.HomeClicked()
	assert.Equal(t, StageHome, app.Stage())
}

func TestSetSectionValidatesAgainstRoleMenu(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{loginOK: true})
	_, err := app.Login(context.Background(), api.LoginRequest{Role: models.RoleAdmin, ID: "A_001", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, app.SetSection(menu.SectionFaculty))
	assert.Equal(t, menu.SectionFaculty, app.ActiveSection())

	// Admins have no admins section; the active section stays put.
	require.Error(t, app.SetSection(menu.SectionAdmins))
	assert.Equal(t, menu.SectionFaculty, app.ActiveSection())

	require.Error(t, app.SetSection("no-such-section"))
}

func TestSetSectionRequiresSession(t *testing.T) {
	app, _ := newTestApp(t, &fakeBackend{})
	require.Error(t, app.SetSection(menu.SectionStudents))
}

func TestContentResolvesPerRoleSection(t *testing.T) {
	backend := &fakeBackend{loginOK: true, students: []gin.H{{"student_id": "S_001", "name": "Aarav"}}}
	app, _ := newTestApp(t, backend)
	_, err := app.Login(context.Background(), api.LoginRequest{Role: models.RoleSuperAdmin, ID: "root", Password: "pw"})
	require.NoError(t, err)

	content, err := app.Content()
	require.NoError(t, err)
	assert.Equal(t, ContentOverview, content.Kind)

	require.NoError(t, app.SetSection(menu.SectionStudents))
	content, err = app.Content()
	require.NoError(t, err)
	require.Equal(t, ContentList, content.Kind)
	require.NotNil(t, content.List)
	assert.Equal(t, "Students", content.List.Title())

	require.NoError(t, content.List.Load(context.Background()))
	require.Len(t, content.List.Rows(), 1)

	require.NoError(t, app.SetSection(menu.SectionReports))
	content, err = app.Content()
	require.NoError(t, err)
	assert.Equal(t, ContentStatic, content.Kind)
	assert.NotEmpty(t, content.Text)
}

func TestContentCoversEveryRoleAndSection(t *testing.T) {
	for _, role := range []models.Role{models.RoleSuperAdmin, models.RoleAdmin, models.RoleFaculty, models.RoleStudent, models.RoleLibrarian} {
		for _, entry := range menu.For(role) {
			_, ok := contentTable[viewKey{role, entry.Key}]
			assert.True(t, ok, "missing content for %s/%s", role, entry.Key)
		}
	}
}

func TestContentCachesListUntilNavigation(t *testing.T) {
	backend := &fakeBackend{loginOK: true, students: []gin.H{{"student_id": "S_001", "name": "Aarav"}}}
	app, _ := newTestApp(t, backend)
	_, err := app.Login(context.Background(), api.LoginRequest{Role: models.RoleAdmin, ID: "A_001", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, app.SetSection(menu.SectionStudents))
	first, err := app.Content()
	require.NoError(t, err)
	again, err := app.Content()
	require.NoError(t, err)
	assert.Same(t, first.List, again.List)

	// Leaving and returning rebuilds the view: cached rows are dropped.
	require.NoError(t, app.SetSection(menu.SectionFaculty))
	require.NoError(t, app.SetSection(menu.SectionStudents))
	rebuilt, err := app.Content()
	require.NoError(t, err)
	assert.NotSame(t, first.List, rebuilt.List)
	assert.True(t, rebuilt.List.Loading())
}

func TestReturnBookRefreshesOpenIssuesView(t *testing.T) {
	backend := &fakeBackend{
		loginOK:   true,
		loginRole: models.RoleLibrarian,
		issues: []gin.H{
			{"issue_id": "I_001", "status": "Issued", "due_date": "2026-08-27"},
			{"issue_id": "I_002", "status": "Issued", "due_date": "2026-09-20"},
		},
	}
	app, _ := newTestApp(t, backend)
	_, err := app.Login(context.Background(), api.LoginRequest{Role: models.RoleLibrarian, ID: "L_001", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, app.SetSection(menu.SectionIssues))
	content, err := app.Content()
	require.NoError(t, err)
	require.NoError(t, content.List.Load(context.Background()))
	require.Len(t, content.List.Rows(), 2)

	backend.issues = backend.issues[1:]
	require.NoError(t, app.ReturnBook(context.Background(), "I_001"))
	assert.Equal(t, []string{"I_001"}, backend.returns)
	require.Len(t, content.List.Rows(), 1)
	assert.Equal(t, "I_002", content.List.Rows()[0].ID("issue_id"))
}

func TestUnknownRoleFallsBackToStudentContent(t *testing.T) {
	backend := &fakeBackend{loginOK: true, loginRole: models.Role("intruder")}
	app, _ := newTestApp(t, backend)
	_, err := app.Login(context.Background(), api.LoginRequest{ID: "X_001", Password: "pw"})
	require.NoError(t, err)

	content, err := app.Content()
	require.NoError(t, err)
	assert.Equal(t, ContentOverview, content.Kind)

	require.NoError(t, app.SetSection(menu.SectionProfile))
	content, err = app.Content()
	require.NoError(t, err)
	assert.Equal(t, ContentProfile, content.Kind)
}
