package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Firebase project
	ProjectID           string
	CredentialsJSONPath string // optional; if empty, Application Default Credentials are used

	// Identity provider sign-in (identitytoolkit REST)
	SignInEndpoint string
	webAPIKeyVar   string

	// Firestore collections
	ProfilesCollection string
	ProductsCollection string

	// Sessions
	SessionName   string
	SessionSecret string
	CookieSecure  bool

	// Templates
	TemplatesGlob string

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool

	// Graceful shutdown
	ShutdownTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "tiendaropa"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8080"),
		GinMode: getenv("GIN_MODE", "release"),

		ProjectID:           getenv("FIREBASE_PROJECT_ID", ""),
		CredentialsJSONPath: getenv("FIREBASE_CREDENTIALS_JSON", ""),

		SignInEndpoint: getenv("FIREBASE_SIGNIN_ENDPOINT",
			"https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"),
		webAPIKeyVar: getenv("FIREBASE_WEB_API_KEY_VAR", "FIREBASE_WEB_API_KEY"),

		ProfilesCollection: getenv("FIRESTORE_PROFILES_COLLECTION", "perfiles"),
		ProductsCollection: getenv("FIRESTORE_PRODUCTS_COLLECTION", "productos"),

		SessionName:   getenv("SESSION_NAME", "tiendaropa_session"),
		SessionSecret: getenv("SESSION_SECRET", "devsessionsecret"),
		CookieSecure:  getbool("COOKIE_SECURE", false),

		TemplatesGlob: getenv("TEMPLATES_GLOB", "web/templates/*.tmpl"),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),

		ShutdownTimeout: getdur("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// WebAPIKey returns the identity provider's browser API key. It is read from
// the environment on every call, so a key rotated on a running process takes
// effect on the next sign-in attempt.
func (c *Config) WebAPIKey() string {
	return os.Getenv(c.webAPIKeyVar)
}
