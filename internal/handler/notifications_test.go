package handler

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsGetHandler(t *testing.T) {
	backend := &fakeAPI{page: feedPage(
		record("n-100", "Alice", "left a comment", false),
		record("n-50", "", "maintenance tonight", true),
	)}
	h := newTestHandler(backend)

	w := httptest.NewRecorder()
	h.NotificationsGetHandler(w, authRequest("GET", "/notifications"))

	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "unread=1")
	assert.Contains(t, body, "page=1/3")
	assert.Contains(t, body, "[n-100 Alice left a comment 2m ago]")
	assert.Contains(t, body, "n-50 System", "missing sender falls back to System")
}

func TestNotificationsGetHandlerBackendDown(t *testing.T) {
	backend := &fakeAPI{getErr: errors.New("connection refused")}
	h := newTestHandler(backend)

	w := httptest.NewRecorder()
	h.NotificationsGetHandler(w, authRequest("GET", "/notifications"))

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "err=Failed to load notifications")
}

func TestNotificationsGetHandlerPageParam(t *testing.T) {
	backend := &fakeAPI{page: feedPage()}
	h := newTestHandler(backend)

	w := httptest.NewRecorder()
	h.NotificationsGetHandler(w, authRequest("GET", "/notifications?page=2"))

	require.Equal(t, 200, w.Code)
	assert.Equal(t, 1, backend.getCalls)
}

func TestNotificationReadPostHandler(t *testing.T) {
	backend := &fakeAPI{page: feedPage(record("n-100", "Alice", "hi", false))}
	h := newTestHandler(backend)

	// Populate the session list first so the flip has a target.
	h.NotificationsGetHandler(httptest.NewRecorder(), authRequest("GET", "/notifications"))

	w := httptest.NewRecorder()
	r := mux.SetURLVars(authRequest("POST", "/notifications/n-100/read"), map[string]string{"id": "n-100"})
	h.NotificationReadPostHandler(w, r)

	require.Equal(t, 303, w.Code)
	assert.Equal(t, fmtRedirect(1), w.Header().Get("Location"))
	assert.Equal(t, "read", backend.lastMethod)
	assert.Equal(t, "n-100", backend.lastId)

	// Reloads fail from here on, so the next render shows the optimistic
	// in-session state rather than the stale backend fixture.
	backend.getErr = errors.New("down")
	w = httptest.NewRecorder()
	h.NotificationsGetHandler(w, authRequest("GET", "/notifications"))
	assert.Contains(t, w.Body.String(), "unread=0")
}

func TestNotificationsReadAllPostHandler(t *testing.T) {
	backend := &fakeAPI{page: feedPage(
		record("n-100", "Alice", "one", false),
		record("n-99", "Bob", "two", false),
	)}
	h := newTestHandler(backend)
	h.NotificationsGetHandler(httptest.NewRecorder(), authRequest("GET", "/notifications"))

	w := httptest.NewRecorder()
	h.NotificationsReadAllPostHandler(w, authRequest("POST", "/notifications/read_all"))

	require.Equal(t, 303, w.Code)
	assert.Equal(t, "read_all", backend.lastMethod)

	// The feed page should now show zero unread and the queued success notice.
	backend.getErr = errors.New("down")
	w = httptest.NewRecorder()
	h.NotificationsGetHandler(w, authRequest("GET", "/notifications"))
	assert.Contains(t, w.Body.String(), "unread=0")
	assert.Contains(t, w.Body.String(), "notice=All notifications marked as read")
}

func TestNotificationDeletePostHandler(t *testing.T) {
	backend := &fakeAPI{page: feedPage(record("n-100", "Alice", "bye", false))}
	h := newTestHandler(backend)
	h.NotificationsGetHandler(httptest.NewRecorder(), authRequest("GET", "/notifications"))

	w := httptest.NewRecorder()
	r := mux.SetURLVars(authRequest("POST", "/notifications/n-100/delete"), map[string]string{"id": "n-100"})
	h.NotificationDeletePostHandler(w, r)

	require.Equal(t, 303, w.Code)
	assert.Equal(t, "delete", backend.lastMethod)
	assert.Equal(t, "n-100", backend.lastId)
}

func TestNotificationOpenHandler(t *testing.T) {
	rec := record("n-100", "Alice", "new reply", false)
	rec.Url = "https://studyhall.example/posts/42"
	backend := &fakeAPI{page: feedPage(rec)}
	h := newTestHandler(backend)
	h.NotificationsGetHandler(httptest.NewRecorder(), authRequest("GET", "/notifications"))

	w := httptest.NewRecorder()
	r := mux.SetURLVars(authRequest("GET", "/notifications/n-100/open"), map[string]string{"id": "n-100"})
	h.NotificationOpenHandler(w, r)

	require.Equal(t, 303, w.Code)
	assert.Equal(t, "/posts/42", w.Header().Get("Location"))
	assert.Equal(t, "read", backend.lastMethod, "opening an unread notification marks it read")
}

func TestNotificationOpenHandlerWithoutUrl(t *testing.T) {
	backend := &fakeAPI{page: feedPage(record("n-100", "Alice", "plain", true))}
	h := newTestHandler(backend)
	h.NotificationsGetHandler(httptest.NewRecorder(), authRequest("GET", "/notifications"))

	w := httptest.NewRecorder()
	r := mux.SetURLVars(authRequest("GET", "/notifications/n-100/open"), map[string]string{"id": "n-100"})
	h.NotificationOpenHandler(w, r)

	require.Equal(t, 303, w.Code)
	assert.Equal(t, fmtRedirect(1), w.Header().Get("Location"), "nothing to open falls back to the feed")
}
