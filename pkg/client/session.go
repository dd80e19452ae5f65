package client

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
)

// Keys under which the session is persisted.
const (
	KeyUser    = "unilink_user"
	KeyToken   = "unilink_token"
	KeyIsAdmin = "is_admin"
)

// Store is the on-device key-value storage backing a session.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetMany(ctx context.Context, values map[string]string) error
	Remove(ctx context.Context, keys ...string) error
}

// Session is the signed-in user as seen by the app.
type Session struct {
	User    User
	Token   string
	IsAdmin bool
}

// SessionManager owns the session lifecycle: Load at launch, Set after
// login or register, Clear at logout. Safe for concurrent use.
type SessionManager struct {
	store Store

	mu      sync.RWMutex
	current *Session
}

func NewSessionManager(store Store) *SessionManager {
	return &SessionManager{store: store}
}

// Load restores the stored session. A partial or unreadable session is
// removed and treated as signed out.
func (m *SessionManager) Load(ctx context.Context) (*Session, error) {
	token, hasToken, err := m.store.Get(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	rawUser, hasUser, err := m.store.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}

	var user User
	if !hasToken || !hasUser || token == "" || json.Unmarshal([]byte(rawUser), &user) != nil {
		if hasToken || hasUser {
			if err := m.store.Remove(ctx, KeyUser, KeyToken, KeyIsAdmin); err != nil {
				return nil, err
			}
		}
		m.replace(nil)
		return nil, nil
	}

	s := &Session{User: user, Token: token, IsAdmin: user.IsAdmin}
	m.replace(s)
	return s.clone(), nil
}

// Set persists and activates a session. The admin flag is derived from the user.
func (m *SessionManager) Set(ctx context.Context, user User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	err = m.store.SetMany(ctx, map[string]string{
		KeyUser:    string(raw),
		KeyToken:   token,
		KeyIsAdmin: strconv.FormatBool(user.IsAdmin),
	})
	if err != nil {
		return err
	}
	m.replace(&Session{User: user, Token: token, IsAdmin: user.IsAdmin})
	return nil
}

// Clear signs out.
func (m *SessionManager) Clear(ctx context.Context) error {
	if err := m.store.Remove(ctx, KeyUser, KeyToken, KeyIsAdmin); err != nil {
		return err
	}
	m.replace(nil)
	return nil
}

// Current returns a copy of the active session, or nil.
func (m *SessionManager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.clone()
}

func (m *SessionManager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

func (m *SessionManager) IsAuthenticated() bool {
	return m.Token() != ""
}

// RequireAdmin gates admin screens.
func (m *SessionManager) RequireAdmin() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch {
	case m.current == nil:
		return ErrNotAuthenticated
	case !m.current.IsAdmin:
		return ErrAdminRequired
	}
	return nil
}

func (m *SessionManager) replace(s *Session) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
