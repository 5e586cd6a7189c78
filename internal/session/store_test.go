package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sdms-portal/internal/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewStore(path, nil), path
}

func TestLoginPersistsAndRestores(t *testing.T) {
	store, path := newTestStore(t)
	store.Login(models.RoleFaculty, "F_002", "iyer@school.test")

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, models.RoleFaculty, current.Role)

	// A fresh store over the same file restores the identity.
	restored := NewStore(path, nil).Restore()
	require.NotNil(t, restored)
	assert.Equal(t, models.RoleFaculty, restored.Role)
	assert.Equal(t, "F_002", restored.ID)
	assert.Equal(t, "iyer@school.test", restored.Email)
}

func TestLogoutClearsFile(t *testing.T) {
	store, path := newTestStore(t)
	store.Login(models.RoleStudent, "S_001", "")
	store.Logout()

	assert.Nil(t, store.Current())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Nil(t, NewStore(path, nil).Restore())
}

func TestRestoreMissingFile(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Nil(t, store.Restore())
	assert.Nil(t, store.Current())
}

func TestRestoreMalformedRecord(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o600))
	assert.Nil(t, store.Restore())
}

func TestRestoreIncompleteRecord(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"role":"student"}`), 0o600))
	assert.Nil(t, store.Restore())
}

func TestSubscribeSeesLoginAndLogout(t *testing.T) {
	store, _ := newTestStore(t)
	var seen []*models.Session
	store.Subscribe(func(sess *models.Session) { seen = append(seen, sess) })

	store.Login(models.RoleLibrarian, "L_001", "")
	store.Logout()

	require.Len(t, seen, 2)
	require.NotNil(t, seen[0])
	assert.Equal(t, models.RoleLibrarian, seen[0].Role)
	assert.Nil(t, seen[1])
}
