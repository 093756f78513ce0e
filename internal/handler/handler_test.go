package handler

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/studyhall-dev/studyhall-web/internal/api"
	"github.com/studyhall-dev/studyhall-web/internal/config"
	"github.com/studyhall-dev/studyhall-web/internal/domain"
	mw "github.com/studyhall-dev/studyhall-web/internal/middleware"
	"github.com/studyhall-dev/studyhall-web/internal/notices"
	"github.com/studyhall-dev/studyhall-web/internal/session"
)

// fakeAPI implements the backend client surface with canned responses.
type fakeAPI struct {
	page       api.NotificationsPage
	getErr     error
	mutateErr  error
	getCalls   int
	lastMethod string
	lastId     string
}

func (f *fakeAPI) GetNotifications(r *http.Request, page int) (api.NotificationsPage, error) {
	f.getCalls++
	if f.getErr != nil {
		return api.NotificationsPage{}, f.getErr
	}
	return f.page, nil
}

func (f *fakeAPI) MarkNotificationRead(r *http.Request, id string) (*api.MutationResponse, error) {
	f.lastMethod, f.lastId = "read", id
	return &api.MutationResponse{}, f.mutateErr
}

func (f *fakeAPI) MarkAllNotificationsRead(r *http.Request) (*api.MutationResponse, error) {
	f.lastMethod = "read_all"
	return &api.MutationResponse{}, f.mutateErr
}

func (f *fakeAPI) DeleteNotification(r *http.Request, id string) (*api.MutationResponse, error) {
	f.lastMethod, f.lastId = "delete", id
	return &api.MutationResponse{}, f.mutateErr
}

func testTemplates() map[string]*template.Template {
	pages := map[string]string{
		"notifications.html": `unread={{.Data.UnreadCount}};page={{.Data.Page.CurrentPage}}/{{.Data.Page.TotalPages}};err={{.Data.Page.Error}};{{range .Data.Notifications}}[{{.Id}} {{.User}} {{.Content}} {{.Time}}]{{end}}{{range .Common.Notices}}notice={{.Title}};{{end}}`,
		"compose.html":       `empty={{.Data.Empty}};mixed={{.Data.HasMixed}};cols={{.Data.Columns}};{{range .Data.Gallery}}[{{.Kind}} {{.Collection}}/{{.Id}}{{if .SizeLabel}} {{.SizeLabel}}{{end}}]{{end}}`,
		"login.html":         `flash={{.Data.Flash}}`,
	}
	templates := make(map[string]*template.Template, len(pages))
	for name, text := range pages {
		templates[name] = template.Must(template.New(name).Parse(text))
	}
	return templates
}

func newTestHandler(backend *fakeAPI) *Handler {
	cfg := config.Public{
		SessionTTL:  time.Minute,
		MaxSessions: 16,
		NoticeTTL:   time.Minute,
	}
	center := notices.NewCenter(cfg.NoticeTTL, cfg.MaxSessions)
	sessions := session.NewManager(backend, center, cfg)
	return New(testTemplates(), cfg, sessions)
}

func authRequest(method, target string) *http.Request {
	return asUser(httptest.NewRequest(method, target, nil))
}

// asUser stamps the request with an authenticated test user, the way the
// auth middleware would.
func asUser(r *http.Request) *http.Request {
	user := &domain.User{Id: 1, Email: "student@studyhall.example"}
	return r.WithContext(context.WithValue(r.Context(), mw.UserClaimsKey, user))
}

func feedPage(records ...api.NotificationRecord) api.NotificationsPage {
	return api.NotificationsPage{Data: records, CurrentPage: 1, LastPage: 3}
}

func record(id, sender, message string, read bool) api.NotificationRecord {
	return api.NotificationRecord{
		Id:         id,
		SenderName: sender,
		Data:       api.NotificationData{Message: message},
		Read:       read,
		CreatedAt:  time.Now().Add(-2 * time.Minute).UTC().Format(time.RFC3339),
	}
}

func fmtRedirect(page int) string {
	return fmt.Sprintf("/notifications?page=%d", page)
}
