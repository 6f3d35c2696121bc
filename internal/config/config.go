package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	UpstreamURL    string
	PageSize       int
	DefaultCountry string
	LogFile        string
}

func Load() Config {
	// Local .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "souq.db"
	} // sqlite file in project root
	upstream := os.Getenv("UPSTREAM_URL")
	if upstream == "" {
		upstream = "http://localhost:9000/api"
	}
	pageSize := 20
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}
	country := os.Getenv("DEFAULT_COUNTRY")
	if country == "" {
		country = "SA"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{
		Port:           port,
		DBDSN:          dsn,
		UpstreamURL:    upstream,
		PageSize:       pageSize,
		DefaultCountry: country,
		LogFile:        logFile,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s UPSTREAM_URL=%s PAGE_SIZE=%d DEFAULT_COUNTRY=%s",
		cfg.Port, cfg.DBDSN, cfg.UpstreamURL, cfg.PageSize, cfg.DefaultCountry)
	return cfg
}
