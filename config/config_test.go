package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "perfiles", cfg.ProfilesCollection)
	assert.Equal(t, "productos", cfg.ProductsCollection)
	assert.Equal(t,
		"https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword",
		cfg.SignInEndpoint)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("FIRESTORE_PRODUCTS_COLLECTION", "prendas")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "prendas", cfg.ProductsCollection)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestInvalidDurationFallsBackToDefault(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "pronto")

	cfg := Load()
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestWebAPIKeyIsReadPerCall(t *testing.T) {
	cfg := Load()

	t.Setenv("FIREBASE_WEB_API_KEY", "first")
	assert.Equal(t, "first", cfg.WebAPIKey())

	// rotated key takes effect without reloading the config
	t.Setenv("FIREBASE_WEB_API_KEY", "second")
	assert.Equal(t, "second", cfg.WebAPIKey())
}
