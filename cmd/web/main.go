package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/studyhall-dev/studyhall-web/internal/config"
	"github.com/studyhall-dev/studyhall-web/internal/logger"
	"github.com/studyhall-dev/studyhall-web/internal/router"
	"github.com/studyhall-dev/studyhall-web/internal/setup"
)

const (
	defaultConfigFolder = "config"
	readTimeout         = 5 * time.Second
	writeTimeout        = 10 * time.Second
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	configFolder := os.Getenv("CONFIG_PATH")
	if configFolder == "" {
		configFolder = defaultConfigFolder
	}
	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps := setup.SetupDependencies(cfg)
	r := router.SetupRouter(deps)

	server := &http.Server{
		Addr:         ":" + cfg.Public.Port,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logger.Log.Info("starting studyhall web", "addr", server.Addr, "api", cfg.Public.APIBaseURL)
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
