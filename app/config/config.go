package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings, loaded once at startup and passed
// explicitly into the server and handlers.
type Config struct {
	SecretKey    string // signs password-reset tokens
	DatabaseURL  string // postgres:// connection string, or sqlite:// fallback
	Addr         string // listen address, e.g. ":8080"
	TemplatesDir string
	StaticDir    string
	SMTP         SMTPConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present. Every value has a development
// default so the app can start against the in-memory database with no setup.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := Config{
		SecretKey:    getenv("SECRET_KEY", "hard to guess string"),
		DatabaseURL:  getenv("DATABASE_URL", "sqlite://"),
		Addr:         ":" + getenv("PORT", "8080"),
		TemplatesDir: getenv("TEMPLATES_DIR", "./app/templates"),
		StaticDir:    getenv("STATIC_DIR", "./static"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("MAIL_SERVER"),
			Port:     getenvInt("MAIL_PORT", 587),
			Username: os.Getenv("MAIL_USERNAME"),
			Password: os.Getenv("MAIL_PASSWORD"),
			From:     getenv("MAIL_FROM", os.Getenv("MAIL_USERNAME")),
		},
	}

	if cfg.SecretKey == "hard to guess string" {
		log.Println("Warning: SECRET_KEY not set, using development default")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
