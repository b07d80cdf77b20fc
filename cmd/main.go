package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dmarquezv/tiendaropa/config"
	"github.com/dmarquezv/tiendaropa/internal/container"
	"github.com/dmarquezv/tiendaropa/internal/infrastructure/identity"
	"github.com/dmarquezv/tiendaropa/internal/interface/middleware"
	"github.com/dmarquezv/tiendaropa/internal/router"
	"github.com/dmarquezv/tiendaropa/pkg/helpers"
	"github.com/dmarquezv/tiendaropa/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Firebase Admin app: auth for user management, Firestore for documents
	app, err := helpers.NewFirebaseApp(ctx, cfg.ProjectID, cfg.CredentialsJSONPath)
	if err != nil {
		log.Fatalf("failed to init firebase app: %v", err)
	}
	authClient, err := helpers.NewAuthClient(ctx, app)
	if err != nil {
		log.Fatalf("failed to init auth client: %v", err)
	}
	store, err := helpers.NewFirestoreClient(ctx, app)
	if err != nil {
		log.Fatalf("failed to init firestore client: %v", err)
	}
	defer func() { _ = store.Close() }()

	idClient := identity.NewClient(authClient, cfg.SignInEndpoint, cfg.WebAPIKey)

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetFirestore(store)
	container.SetIdentity(idClient)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	// Cookie sessions carry the authenticated seller and flash notices
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(cfg.SessionName, sessionStore))

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
