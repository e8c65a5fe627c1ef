package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	UploadsDir string
	SitesDir   string

	// Extraction model (Groq chat completions)
	GroqAPIKey string
	GroqModel  string

	// Component editing model (Gemini)
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads .env (when present) and the environment. Missing provider
// credentials are logged but never fatal: requests that depend on the absent
// provider fail at call time instead.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		UploadsDir:   getenv("UPLOADS_DIR", "./uploads"),
		SitesDir:     getenv("SITES_DIR", "./generated_sites"),
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		GroqModel:    getenv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	if cfg.GroqAPIKey == "" {
		log.Println("Warning: GROQ_API_KEY not set, resume extraction will be unavailable")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, component editing will be unavailable")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
