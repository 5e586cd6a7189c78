// Package session owns the single persisted client identity. The record is
// written only by Login/Logout and read at startup; corrupt or missing data
// is treated as "no session", never a startup failure.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/sdms-portal/internal/models"
)

// Listener is notified whenever the active session changes. A nil session
// means logged out.
type Listener func(*models.Session)

// Store holds the active identity and persists it across restarts.
type Store struct {
	path   string
	logger *zap.Logger

	mu        sync.Mutex
	current   *models.Session
	listeners []Listener
}

// NewStore creates a store persisting to path.
func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Current returns the active session, nil when logged out.
func (s *Store) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers a listener for session changes.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Login persists the session and makes it the active identity.
func (s *Store) Login(role models.Role, id, email string) {
	sess := &models.Session{Role: role, ID: id, Email: email}

	s.mu.Lock()
	s.current = sess
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	if err := s.persist(sess); err != nil {
		s.logger.Warn("session persist failed", zap.String("path", s.path), zap.Error(err))
	}
	for _, l := range listeners {
		l(sess)
	}
}

// Logout clears the persisted session and the active identity.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("session clear failed", zap.String("path", s.path), zap.Error(err))
	}
	for _, l := range listeners {
		l(nil)
	}
}

// Restore loads the persisted session, if any, and makes it active. Malformed
// or unreadable data yields nil.
func (s *Store) Restore() *models.Session {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.logger.Warn("discarding malformed session record", zap.String("path", s.path), zap.Error(err))
		return nil
	}
	if sess.Role == "" || sess.ID == "" {
		return nil
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return &sess
}

// persist writes atomically via a temp file so a crash mid-write can never
// leave a truncated record.
func (s *Store) persist(sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
