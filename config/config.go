package config

import (
	"errors"
	"os"
	"strings"
)

// AppConfig holds everything read from the environment at startup
type AppConfig struct {
	Port              string
	CredentialsFile   string
	SpreadsheetID     string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	CORSOrigins       []string
}

// Load reads the application configuration from the environment.
// A .env file, if present, has already been loaded by main.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:              os.Getenv("PORT"),
		CredentialsFile:   os.Getenv("SHEETS_CREDENTIALS_FILE"),
		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = "credentials.json"
	}
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("SPREADSHEET_ID not set")
	}
	if cfg.AdminUsername == "" {
		return nil, errors.New("ADMIN_USERNAME not set")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return nil, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000"}
	}

	return cfg, nil
}
