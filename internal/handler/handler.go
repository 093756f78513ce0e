package handler

import (
	"html/template"
	"net/http"

	"github.com/studyhall-dev/studyhall-web/internal/config"
	"github.com/studyhall-dev/studyhall-web/internal/session"
)

type Handler struct {
	Templates map[string]*template.Template
	Public    config.Public
	Sessions  *session.Manager
}

func New(templates map[string]*template.Template, publicCfg config.Public, sessions *session.Manager) *Handler {
	return &Handler{
		Templates: templates,
		Public:    publicCfg,
		Sessions:  sessions,
	}
}

func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/favicon.ico")
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
