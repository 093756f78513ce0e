package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/studyhall-dev/studyhall-web/internal/domain"
	mw "github.com/studyhall-dev/studyhall-web/internal/middleware"
)

// NotificationsGetHandler loads the requested page of the feed and renders it.
func (h *Handler) NotificationsGetHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	sess := h.Sessions.Get(user)

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if pageInt, err := strconv.Atoi(pageStr); err == nil && pageInt > 0 {
			page = pageInt
		}
	}
	sess.Store.ChangePage(r, page)

	snap := sess.Store.Snapshot()
	var templateData struct {
		Notifications []notificationView
		Page          domain.PageState
		UnreadCount   int
		PrevPage      int
		NextPage      int
	}
	templateData.Notifications = renderNotifications(snap.Notifications)
	templateData.Page = snap.Page
	templateData.UnreadCount = snap.UnreadCount
	templateData.PrevPage = snap.Page.CurrentPage - 1
	templateData.NextPage = snap.Page.CurrentPage + 1

	h.renderTemplate(w, r, "notifications.html", templateData)
}

// NotificationReadPostHandler marks one notification as read.
func (h *Handler) NotificationReadPostHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	sess := h.Sessions.Get(user)

	sess.Store.MarkAsRead(r, mux.Vars(r)["id"])
	h.redirectToFeed(w, r, sess.Store.Snapshot().Page.CurrentPage)
}

// NotificationsReadAllPostHandler marks the whole feed as read.
func (h *Handler) NotificationsReadAllPostHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	sess := h.Sessions.Get(user)

	sess.Store.MarkAllAsRead(r)
	h.redirectToFeed(w, r, sess.Store.Snapshot().Page.CurrentPage)
}

// NotificationDeletePostHandler removes one notification.
func (h *Handler) NotificationDeletePostHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	sess := h.Sessions.Get(user)

	sess.Store.Delete(r, mux.Vars(r)["id"])
	h.redirectToFeed(w, r, sess.Store.Snapshot().Page.CurrentPage)
}

// NotificationOpenHandler follows a notification's deep-link: the click
// marks it read and redirects to the resolved path, or back to the feed
// when there is nothing to open.
func (h *Handler) NotificationOpenHandler(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	sess := h.Sessions.Get(user)

	var target string
	sess.Store.HandleClick(r, mux.Vars(r)["id"], func(path string) { target = path })
	if target == "" {
		h.redirectToFeed(w, r, sess.Store.Snapshot().Page.CurrentPage)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) redirectToFeed(w http.ResponseWriter, r *http.Request, page int) {
	http.Redirect(w, r, fmt.Sprintf("/notifications?page=%d", page), http.StatusSeeOther)
}
