package notifications

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/studyhall-dev/studyhall-web/internal/api"
	"github.com/studyhall-dev/studyhall-web/internal/domain"
	"github.com/studyhall-dev/studyhall-web/internal/logger"
)

// API is the slice of the backend client the store depends on.
type API interface {
	GetNotifications(r *http.Request, page int) (api.NotificationsPage, error)
	MarkNotificationRead(r *http.Request, id string) (*api.MutationResponse, error)
	MarkAllNotificationsRead(r *http.Request) (*api.MutationResponse, error)
	DeleteNotification(r *http.Request, id string) (*api.MutationResponse, error)
}

// Notifier receives transient notices for mutation outcomes.
type Notifier interface {
	Success(title string)
	Error(title string)
}

type Config struct {
	// RollbackOnFailure reverts optimistic delete/mark-all mutations when the
	// backend call fails. Off by default: the optimistic state is treated as
	// authoritative and failures only surface a notice.
	RollbackOnFailure bool
}

// Store owns the paginated notification list of one user session. All state
// transitions go through its methods; nothing else mutates the list or the
// page counters. Mutations are applied to local state before the backend
// call so the UI never waits on the network.
type Store struct {
	api      API
	notices  Notifier
	rollback bool
	clock    func() time.Time
	sanitize *bluemonday.Policy

	mu          sync.Mutex
	list        []domain.Notification
	currentPage int
	totalPages  int
	loaded      bool // at least one successful load
	loading     bool
	loadErr     string
}

func NewStore(apiClient API, notices Notifier, cfg Config) *Store {
	return &Store{
		api:         apiClient,
		notices:     notices,
		rollback:    cfg.RollbackOnFailure,
		clock:       time.Now,
		sanitize:    bluemonday.StrictPolicy(),
		currentPage: 1,
		totalPages:  1,
	}
}

// Load fetches one page and replaces the list with its normalized records.
// On failure the previous list stays as it was and an inline error is set.
// The loading flag is reset on every exit path, panics included.
func (s *Store) Load(r *http.Request, page int) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.loadErr = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	resp, err := s.api.GetNotifications(r, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		logger.Log.Error("failed to load notifications", "page", page, "error", err)
		s.loadErr = "Failed to load notifications"
		return
	}

	list := make([]domain.Notification, 0, len(resp.Data))
	for _, rec := range resp.Data {
		list = append(list, s.normalize(rec))
	}
	// Responses commit in arrival order. A stale page that resolves after a
	// newer request overwrites it; kept to match the original semantics.
	s.list = list
	s.currentPage = pageOrFirst(resp.CurrentPage)
	s.totalPages = pageOrFirst(resp.LastPage)
	s.loaded = true
}

// ChangePage moves the current page and triggers a load. Requests outside
// [1, totalPages] are no-ops. Before the first successful load the upper
// bound is unknown and any positive page is accepted.
func (s *Store) ChangePage(r *http.Request, page int) {
	s.mu.Lock()
	if page < 1 || (s.loaded && page > s.totalPages) {
		s.mu.Unlock()
		return
	}
	s.currentPage = page
	s.mu.Unlock()

	s.Load(r, page)
}

// MarkAsRead optimistically flips the read flag, then fires the mutation.
// The read flag is low stakes and eventually consistent: a failed call is
// logged and otherwise ignored, the flag stays flipped.
func (s *Store) MarkAsRead(r *http.Request, id string) {
	s.mu.Lock()
	for i := range s.list {
		if s.list[i].Id == id {
			s.list[i].IsRead = true
			break
		}
	}
	s.mu.Unlock()

	if _, err := s.api.MarkNotificationRead(r, id); err != nil {
		logger.Log.Warn("failed to mark notification read", "id", id, "error", err)
	}
}

// MarkAllAsRead optimistically flips every read flag, then issues one bulk
// mutation. The outcome surfaces as a notice either way.
func (s *Store) MarkAllAsRead(r *http.Request) {
	s.mu.Lock()
	flipped := make([]string, 0)
	for i := range s.list {
		if !s.list[i].IsRead {
			flipped = append(flipped, s.list[i].Id)
			s.list[i].IsRead = true
		}
	}
	s.mu.Unlock()

	resp, err := s.api.MarkAllNotificationsRead(r)
	if err != nil {
		logger.Log.Warn("failed to mark all notifications read", "error", err)
		if s.rollback {
			s.unflip(flipped)
		}
		s.notices.Error("Failed to mark all as read")
		return
	}
	s.notices.Success(titleOr(resp, "All notifications marked as read"))
}

// Delete optimistically removes the item, then issues the delete call. The
// outcome surfaces as a notice; the item is only re-inserted in rollback mode.
func (s *Store) Delete(r *http.Request, id string) {
	s.mu.Lock()
	idx := -1
	var removed domain.Notification
	for i, n := range s.list {
		if n.Id == id {
			idx, removed = i, n
			break
		}
	}
	if idx >= 0 {
		s.list = append(s.list[:idx], s.list[idx+1:]...)
	}
	s.mu.Unlock()

	resp, err := s.api.DeleteNotification(r, id)
	if err != nil {
		logger.Log.Warn("failed to delete notification", "id", id, "error", err)
		if s.rollback && idx >= 0 {
			s.reinsert(idx, removed)
		}
		s.notices.Error("Failed to delete notification")
		return
	}
	s.notices.Success(titleOr(resp, "Notification deleted"))
}

// HandleClick marks an unread notification read and resolves its deep-link
// into a navigation path. A malformed url surfaces a notice and skips
// navigation; the click never fails.
func (s *Store) HandleClick(r *http.Request, id string, navigate func(path string)) {
	s.mu.Lock()
	var clicked *domain.Notification
	for i := range s.list {
		if s.list[i].Id == id {
			n := s.list[i]
			clicked = &n
			break
		}
	}
	s.mu.Unlock()
	if clicked == nil {
		return
	}

	if !clicked.IsRead {
		s.MarkAsRead(r, id)
	}
	if clicked.Url == "" {
		return
	}

	u, err := url.Parse(clicked.Url)
	if err != nil || !u.IsAbs() || u.Host == "" {
		logger.Log.Warn("invalid notification url", "id", id, "url", clicked.Url)
		s.notices.Error("Invalid notification link")
		return
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	navigate(path)
}

// UnreadCount drives the badge and gates the mark-all affordance.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadLocked()
}

// View is one notification ready for rendering, with its display time
// derived at snapshot time.
type View struct {
	domain.Notification
	Time string
}

type Snapshot struct {
	Notifications []View
	Page          domain.PageState
	UnreadCount   int
}

// Snapshot copies the current state for rendering. Display times are
// derived against the wall clock now, never cached, so the same state
// snapshotted later yields updated labels.
func (s *Store) Snapshot() Snapshot {
	now := s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]View, len(s.list))
	for i, n := range s.list {
		views[i] = View{Notification: n, Time: FormatTime(now, n.CreatedAt)}
	}
	return Snapshot{
		Notifications: views,
		Page: domain.PageState{
			CurrentPage: s.currentPage,
			TotalPages:  s.totalPages,
			Loading:     s.loading,
			Error:       s.loadErr,
		},
		UnreadCount: s.unreadLocked(),
	}
}

func (s *Store) normalize(rec api.NotificationRecord) domain.Notification {
	user := rec.SenderName
	if user == "" {
		user = "System"
	}
	return domain.Notification{
		Id:        rec.Id,
		User:      user,
		Avatar:    rec.SenderAvatar,
		Content:   s.sanitize.Sanitize(rec.Data.Message),
		IsRead:    rec.Read,
		CreatedAt: parseTimestamp(rec.CreatedAt),
		Url:       rec.Url,
	}
}

func (s *Store) unreadLocked() int {
	count := 0
	for _, n := range s.list {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (s *Store) unflip(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		for i := range s.list {
			if s.list[i].Id == id {
				s.list[i].IsRead = false
				break
			}
		}
	}
}

func (s *Store) reinsert(idx int, n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx > len(s.list) {
		idx = len(s.list)
	}
	s.list = append(s.list[:idx], append([]domain.Notification{n}, s.list[idx:]...)...)
}

func pageOrFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func titleOr(resp *api.MutationResponse, fallback string) string {
	if resp != nil && resp.Message != "" {
		return resp.Message
	}
	return fallback
}
