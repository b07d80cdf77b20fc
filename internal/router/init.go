package router

import (
	"github.com/dmarquezv/tiendaropa/internal/application"
	"github.com/dmarquezv/tiendaropa/internal/container"
	fsinfra "github.com/dmarquezv/tiendaropa/internal/infrastructure/firestore"
	handlers "github.com/dmarquezv/tiendaropa/internal/interface/http"
	"github.com/dmarquezv/tiendaropa/internal/router/modules"
)

func buildAuthHandler() *handlers.AuthHandler {
	cfg := container.GetConfig()
	profiles := fsinfra.NewProfileRepository(container.GetFirestore(), cfg.ProfilesCollection)
	svc := application.NewAuthService(container.GetIdentity(), profiles, container.GetLogger())
	return handlers.NewAuthHandler(svc, container.GetLogger())
}

func buildProductHandler() *handlers.ProductHandler {
	cfg := container.GetConfig()
	products := fsinfra.NewProductRepository(container.GetFirestore(), cfg.ProductsCollection)
	svc := application.NewInventoryService(products, container.GetLogger())
	return handlers.NewProductHandler(svc, container.GetLogger())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(modules.NewAuthModule(buildAuthHandler()))
	r.Add(modules.NewInventoryModule(buildProductHandler()))
}
