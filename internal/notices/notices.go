package notices

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/studyhall-dev/studyhall-web/internal/domain"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Center keeps per-session transient notices. Entries expire after the
// configured TTL, the server-side analog of a toast auto-dismissing.
type Center struct {
	ttl     time.Duration
	mu      sync.Mutex // guards read-modify-write of an inbox slice
	inboxes *expirable.LRU[string, []domain.Notice]
}

func NewCenter(ttl time.Duration, maxSessions int) *Center {
	return &Center{
		ttl:     ttl,
		inboxes: expirable.NewLRU[string, []domain.Notice](maxSessions, nil, ttl),
	}
}

// Drain returns a session's pending notices and clears them, so every notice
// is shown at most once.
func (c *Center) Drain(session string) []domain.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	pending, ok := c.inboxes.Get(session)
	if !ok {
		return nil
	}
	c.inboxes.Remove(session)
	return pending
}

func (c *Center) push(session, level, title string) {
	n := domain.Notice{Id: uuid.NewString(), Level: level, Title: title}
	c.mu.Lock()
	defer c.mu.Unlock()
	pending, _ := c.inboxes.Get(session)
	c.inboxes.Add(session, append(pending, n))
}

// Inbox binds the center to one session. It satisfies the notification
// store's Notifier.
type Inbox struct {
	center  *Center
	session string
}

func (c *Center) Inbox(session string) *Inbox {
	return &Inbox{center: c, session: session}
}

func (i *Inbox) Success(title string) { i.center.push(i.session, LevelSuccess, title) }
func (i *Inbox) Error(title string)   { i.center.push(i.session, LevelError, title) }
