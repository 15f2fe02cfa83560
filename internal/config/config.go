package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	// CallbackBaseURL is where Google sends the OAuth callback.
	CallbackBaseURL string
	// FrontendURL is the SPA origin: CORS allow-origin and redirect target.
	FrontendURL string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Addr:               getenv("THRIFT_MARKET_ADDR", ":8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		CallbackBaseURL:    getenv("OAUTH_CALLBACK_URL", "http://localhost:8080"),
		FrontendURL:        getenv("FRONTEND_URL", "http://localhost:5173"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
