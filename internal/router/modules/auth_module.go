package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/dmarquezv/tiendaropa/internal/interface/http"
	"github.com/dmarquezv/tiendaropa/internal/interface/middleware"
)

// AuthModule wires registration, login, logout and the dashboard.
// Public: GET/POST /registro, GET/POST /login, GET /logout
// Guarded: GET /dashboard

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/registro", m.Handler.ShowRegister)
	rg.POST("/registro", m.Handler.Register)
	rg.GET("/login", m.Handler.ShowLogin)
	rg.POST("/login", m.Handler.Login)
	rg.GET("/logout", m.Handler.Logout)

	guarded := rg.Group("/")
	guarded.Use(middleware.RequireSeller())
	{
		guarded.GET("/dashboard", m.Handler.Dashboard)
	}
}
