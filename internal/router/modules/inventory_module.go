package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/dmarquezv/tiendaropa/internal/interface/http"
	"github.com/dmarquezv/tiendaropa/internal/interface/middleware"
)

// InventoryModule wires the per-seller product catalog. Every route sits
// behind the session guard.

type InventoryModule struct {
	Handler *handlers.ProductHandler
}

func NewInventoryModule(h *handlers.ProductHandler) *InventoryModule {
	return &InventoryModule{Handler: h}
}

func (m *InventoryModule) Register(rg *gin.RouterGroup) {
	guarded := rg.Group("/productos")
	guarded.Use(middleware.RequireSeller())
	{
		guarded.GET("", m.Handler.List)
		guarded.GET("/nuevo", m.Handler.ShowAdd)
		guarded.POST("/nuevo", m.Handler.Add)
		guarded.GET("/editar/:id", m.Handler.ShowEdit)
		guarded.POST("/editar/:id", m.Handler.Edit)
		guarded.GET("/eliminar/:id", m.Handler.Delete)
	}
}
