package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/studyhall-dev/studyhall-web/internal/handler"
	"github.com/studyhall-dev/studyhall-web/internal/middleware/metrics"
	"github.com/studyhall-dev/studyhall-web/internal/setup"
)

func SetupRouter(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)
	r.Use(metrics.Middleware)

	// Public routes
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", handler.HealthHandler)
	r.HandleFunc("/favicon.ico", handler.FaviconHandler)
	r.HandleFunc("/login", deps.Handler.LoginGetHandler).Methods("GET")

	// Authenticated routes
	authRouter := r.NewRoute().Subrouter()
	authRouter.Use(deps.Auth.NeedAuth())
	authRouter.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir("static"))),
	)
	authRouter.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/notifications", http.StatusSeeOther)
	}).Methods("GET")

	authRouter.HandleFunc("/notifications", deps.Handler.NotificationsGetHandler).Methods("GET")
	authRouter.HandleFunc("/notifications/read_all", deps.Handler.NotificationsReadAllPostHandler).Methods("POST")
	authRouter.HandleFunc("/notifications/{id}/read", deps.Handler.NotificationReadPostHandler).Methods("POST")
	authRouter.HandleFunc("/notifications/{id}/delete", deps.Handler.NotificationDeletePostHandler).Methods("POST")
	authRouter.HandleFunc("/notifications/{id}/open", deps.Handler.NotificationOpenHandler).Methods("GET")

	authRouter.HandleFunc("/compose", deps.Handler.ComposeGetHandler).Methods("GET")
	authRouter.HandleFunc("/compose/attachments", deps.Handler.ComposeAttachPostHandler).Methods("POST")
	authRouter.HandleFunc("/compose/attachments/remove", deps.Handler.ComposeRemovePostHandler).Methods("POST")

	return r
}
