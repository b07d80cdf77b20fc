package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dmarquezv/tiendaropa/internal/application"
	"github.com/dmarquezv/tiendaropa/internal/domain/entity"
	"github.com/dmarquezv/tiendaropa/pkg/flash"
	"github.com/dmarquezv/tiendaropa/pkg/validation"
	"github.com/dmarquezv/tiendaropa/pkg/view"
)

// InventoryService is the slice of the application layer the catalog pages
// use.
type InventoryService interface {
	List(ctx context.Context, sellerID string) ([]entity.Product, error)
	Add(ctx context.Context, sellerID string, in application.ProductInput) (string, error)
	GetOwned(ctx context.Context, sellerID, id string) (*entity.Product, error)
	Update(ctx context.Context, sellerID, id string, in application.ProductInput) error
	Delete(ctx context.Context, id string) error
}

type ProductHandler struct {
	Svc    InventoryService
	Logger *logrus.Logger
}

func NewProductHandler(svc InventoryService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type productForm struct {
	Name  string `form:"nombre" binding:"required"`
	Size  string `form:"talla" binding:"required"`
	Price string `form:"precio" binding:"required"`
}

func (f productForm) input() application.ProductInput {
	return application.ProductInput{Name: f.Name, Size: f.Size, Price: f.Price}
}

func sessionUID(c *gin.Context) string {
	uid, _ := sessions.Default(c).Get("uid").(string)
	return uid
}

// List renders the seller's catalog. A failed query reports the error and
// still renders; an empty catalog is just an empty list.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context(), sessionUID(c))
	if err != nil {
		flash.Add(c, flash.Error, "Hubo un error al obtener el catálogo")
		c.HTML(http.StatusOK, "productos_listar.tmpl", view.WithSession(c, view.Data{
			"Products": []entity.Product{},
		}))
		return
	}
	c.HTML(http.StatusOK, "productos_listar.tmpl", view.WithSession(c, view.Data{
		"Products": products,
	}))
}

// ShowAdd renders the empty product form.
func (h *ProductHandler) ShowAdd(c *gin.Context) {
	c.HTML(http.StatusOK, "productos_form.tmpl", view.WithSession(c, nil))
}

// Add creates a product owned by the session's seller.
func (h *ProductHandler) Add(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "productos_form.tmpl", view.WithSession(c, view.Data{
			"FieldErrors": validation.ToDetails(err),
			"Form":        formEcho(c),
		}))
		return
	}

	if _, err := h.Svc.Add(c.Request.Context(), sessionUID(c), form.input()); err != nil {
		flash.Add(c, flash.Error, "Error al agregar producto")
		c.HTML(http.StatusOK, "productos_form.tmpl", view.WithSession(c, view.Data{
			"Form": formEcho(c),
		}))
		return
	}

	flash.Add(c, flash.Success, "Prenda agregada al inventario")
	c.Redirect(http.StatusSeeOther, "/productos")
}

// ShowEdit renders the current values of an owned product. Not-found and
// ownership failures redirect back to the list with the denial message.
func (h *ProductHandler) ShowEdit(c *gin.Context) {
	id := c.Param("id")
	product, err := h.Svc.GetOwned(c.Request.Context(), sessionUID(c), id)
	if err != nil {
		flash.Add(c, flash.Error, editErrorMessage(err))
		c.Redirect(http.StatusSeeOther, "/productos")
		return
	}
	c.HTML(http.StatusOK, "productos_editar.tmpl", view.WithSession(c, view.Data{
		"Product": product,
		"ID":      id,
	}))
}

// Edit overwrites name, size and price of an owned product. Every failure
// path redirects to the list; the ownership check runs before any write.
func (h *ProductHandler) Edit(c *gin.Context) {
	id := c.Param("id")

	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "productos_editar.tmpl", view.WithSession(c, view.Data{
			"FieldErrors": validation.ToDetails(err),
			"Form":        formEcho(c),
			"ID":          id,
		}))
		return
	}

	if err := h.Svc.Update(c.Request.Context(), sessionUID(c), id, form.input()); err != nil {
		flash.Add(c, flash.Error, editErrorMessage(err))
		c.Redirect(http.StatusSeeOther, "/productos")
		return
	}

	flash.Add(c, flash.Success, "Producto actualizado con éxito")
	c.Redirect(http.StatusSeeOther, "/productos")
}

// Delete removes the product by id and returns to the list whatever the
// outcome. No ownership comparison is made on this path.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		flash.Add(c, flash.Error, "Error al eliminar")
	} else {
		flash.Add(c, flash.Success, "Producto eliminado del inventario")
	}
	c.Redirect(http.StatusSeeOther, "/productos")
}

func editErrorMessage(err error) string {
	switch {
	case errors.Is(err, application.ErrProductNotFound):
		return "El producto no existe"
	case errors.Is(err, application.ErrNotOwner):
		return "No tienes permiso para editar este producto"
	default:
		return "Error al editar el producto"
	}
}

// formEcho returns the submitted values so a rejected form renders exactly
// what the seller typed.
func formEcho(c *gin.Context) view.Data {
	return view.Data{
		"Nombre": c.PostForm("nombre"),
		"Talla":  c.PostForm("talla"),
		"Precio": c.PostForm("precio"),
	}
}
