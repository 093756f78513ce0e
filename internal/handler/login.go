package handler

import (
	"encoding/base64"
	"net/http"

	mw "github.com/studyhall-dev/studyhall-web/internal/middleware"
)

// LoginGetHandler renders the sign-in page. Authentication itself happens
// on the platform backend; this page only surfaces the flash message left
// by a redirect.
func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	var templateData struct {
		Flash string
	}
	if cookie, err := r.Cookie(mw.FlashErrorCookie); err == nil {
		if decoded, decodeErr := base64.StdEncoding.DecodeString(cookie.Value); decodeErr == nil {
			templateData.Flash = string(decoded)
		}
		http.SetCookie(w, &http.Cookie{Name: mw.FlashErrorCookie, Path: "/", MaxAge: -1})
	}

	h.renderTemplate(w, r, "login.html", templateData)
}
