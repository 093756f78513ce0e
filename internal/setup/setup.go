package setup

import (
	"html/template"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/studyhall-dev/studyhall-web/internal/apiclient"
	"github.com/studyhall-dev/studyhall-web/internal/config"
	"github.com/studyhall-dev/studyhall-web/internal/handler"
	"github.com/studyhall-dev/studyhall-web/internal/jwt"
	"github.com/studyhall-dev/studyhall-web/internal/middleware"
	"github.com/studyhall-dev/studyhall-web/internal/notices"
	"github.com/studyhall-dev/studyhall-web/internal/session"
)

const (
	baseTemplate           = "base.html"
	tmplPath               = "templates"
	templateReloadInterval = 5 * time.Second
	jwtTTL                 = 30 * 24 * time.Hour
)

type Dependencies struct {
	Handler *handler.Handler
	Auth    *middleware.Auth
	Public  config.Public
}

func SetupDependencies(cfg *config.Config) *Dependencies {
	templates := mustLoadTemplates(tmplPath)
	apiClient := apiclient.New(cfg.Public.APIBaseURL)
	noticeCenter := notices.NewCenter(cfg.Public.NoticeTTL, cfg.Public.MaxSessions)
	sessions := session.NewManager(apiClient, noticeCenter, cfg.Public)

	h := handler.New(templates, cfg.Public, sessions)
	startTemplateReloader(h, tmplPath)

	jwtSvc := jwt.New(cfg.JwtKey(), jwtTTL)
	auth := middleware.NewAuth(jwtSvc, cfg.Public.SecureCookies)

	return &Dependencies{
		Handler: h,
		Auth:    auth,
		Public:  cfg.Public,
	}
}

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate && f.Name() != "partials.html" {
			templates[f.Name()] = template.Must(template.New(baseTemplate).Funcs(
				template.FuncMap{
					"sub": sub,
					"add": add,
				},
			).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
				path.Join(tmplPath, "partials.html"),
			),
			)
		}
	}
	return templates
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") == "development" {
		ticker := time.NewTicker(templateReloadInterval)
		go func() {
			for range ticker.C {
				h.Templates = mustLoadTemplates(tmplPath)
			}
		}()
	}
}
