package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	APIBaseURL        string        `yaml:"api_base_url"`
	Port              string        `yaml:"port"`
	LogLevel          string        `yaml:"log_level"`
	LogJSON           bool          `yaml:"log_json"`
	SecureCookies     bool          `yaml:"secure_cookies"`
	SessionTTL        time.Duration `yaml:"session_ttl"`  // per-user view state lifetime
	MaxSessions       int           `yaml:"max_sessions"` // upper bound on live view states
	NoticeTTL         time.Duration `yaml:"notice_ttl"`   // transient notice auto-dismiss
	RollbackOnFailure bool          `yaml:"rollback_on_failure"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	applyDefaults(&public)

	return &Config{public, private}
}

func applyDefaults(p *Public) {
	if p.APIBaseURL == "" {
		p.APIBaseURL = "http://api:8080"
	}
	if p.Port == "" {
		p.Port = "8081"
	}
	if p.SessionTTL == 0 {
		p.SessionTTL = 30 * time.Minute
	}
	if p.MaxSessions == 0 {
		p.MaxSessions = 4096
	}
	if p.NoticeTTL == 0 {
		p.NoticeTTL = 3 * time.Second
	}
}
