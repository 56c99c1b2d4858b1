package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the client's runtime settings. Values come from
// ~/.arqueo/config.env (if present) and then the process environment;
// the environment wins.
type Config struct {
	ServerURL string // base URL of the caja-fuerte backend
	Token     string // bearer token for authenticated endpoints
	Turno     string // default shift when a command gives none
}

// Load reads the config file and environment and returns the effective
// configuration. A missing config file is not an error.
func Load() *Config {
	if dir, err := Dir(); err == nil {
		_ = godotenv.Load(filepath.Join(dir, "config.env"))
	}

	return &Config{
		ServerURL: getEnv("ARQUEO_SERVER_URL", "http://localhost:8080"),
		Token:     os.Getenv("ARQUEO_TOKEN"),
		Turno:     getEnv("ARQUEO_TURNO", "M"),
	}
}

// Dir returns the per-user arqueo directory (~/.arqueo).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".arqueo"), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
