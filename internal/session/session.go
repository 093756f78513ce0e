package session

import (
	"strconv"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/studyhall-dev/studyhall-web/internal/attachments"
	"github.com/studyhall-dev/studyhall-web/internal/config"
	"github.com/studyhall-dev/studyhall-web/internal/domain"
	"github.com/studyhall-dev/studyhall-web/internal/notices"
	"github.com/studyhall-dev/studyhall-web/internal/notifications"
)

// Session is the per-user view state: the notification store and the
// attachment composer of the post being written. It lives as long as the
// user keeps the pages open; idle sessions expire.
type Session struct {
	Store    *notifications.Store
	Composer *attachments.Composer
}

// Manager hands out one Session per authenticated user.
type Manager struct {
	cfg      config.Public
	api      notifications.API
	notices  *notices.Center
	mu       sync.Mutex // single-flight session creation
	sessions *expirable.LRU[string, *Session]
}

func NewManager(apiClient notifications.API, center *notices.Center, cfg config.Public) *Manager {
	return &Manager{
		cfg:      cfg,
		api:      apiClient,
		notices:  center,
		sessions: expirable.NewLRU[string, *Session](cfg.MaxSessions, nil, cfg.SessionTTL),
	}
}

func (m *Manager) Get(user *domain.User) *Session {
	key := sessionKey(user)

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions.Get(key); ok {
		return s
	}
	s := &Session{
		Store: notifications.NewStore(m.api, m.notices.Inbox(key), notifications.Config{
			RollbackOnFailure: m.cfg.RollbackOnFailure,
		}),
		Composer: attachments.NewComposer(),
	}
	m.sessions.Add(key, s)
	return s
}

// DrainNotices returns and clears the user's pending transient notices.
func (m *Manager) DrainNotices(user *domain.User) []domain.Notice {
	return m.notices.Drain(sessionKey(user))
}

func sessionKey(user *domain.User) string {
	return strconv.FormatInt(user.Id, 10)
}
