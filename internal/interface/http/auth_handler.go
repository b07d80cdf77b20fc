package handlers

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dmarquezv/tiendaropa/internal/application"
	"github.com/dmarquezv/tiendaropa/internal/domain/entity"
	"github.com/dmarquezv/tiendaropa/internal/infrastructure/identity"
	"github.com/dmarquezv/tiendaropa/pkg/flash"
	"github.com/dmarquezv/tiendaropa/pkg/validation"
	"github.com/dmarquezv/tiendaropa/pkg/view"
)

// AuthService is the slice of the application layer the auth pages use.
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (*identity.SignedIn, error)
	DashboardProfile(ctx context.Context, uid, email string) (*entity.Profile, error)
}

type AuthHandler struct {
	Svc    AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type credentialsForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,pwd"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// ShowRegister renders the empty registration form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "registro.tmpl", view.WithSession(c, nil))
}

// Register creates the seller with the identity provider and writes the
// profile. Any failure surfaces as a generic message on the same page.
func (h *AuthHandler) Register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "registro.tmpl", view.WithSession(c, view.Data{
			"FieldErrors": validation.ToDetails(err),
			"Email":       c.PostForm("email"),
		}))
		return
	}

	uid, err := h.Svc.Register(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		c.HTML(http.StatusOK, "registro.tmpl", view.WithSession(c, view.Data{
			"Error": "No se pudo completar el registro",
			"Email": form.Email,
		}))
		return
	}

	c.HTML(http.StatusOK, "registro.tmpl", view.WithSession(c, view.Data{
		"Mensaje": "Vendedor registrado correctamente con UID: " + uid,
	}))
}

// ShowLogin renders the login form; already-authenticated sessions skip
// straight to the dashboard.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	sess := sessions.Default(c)
	if uid, _ := sess.Get("uid").(string); uid != "" {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", view.WithSession(c, nil))
}

// Login exchanges the posted credentials with the identity provider. On 200
// the session holds uid, email and id token; any failure leaves the session
// untouched and re-renders the form with the mapped message.
func (h *AuthHandler) Login(c *gin.Context) {
	sess := sessions.Default(c)
	if uid, _ := sess.Get("uid").(string); uid != "" {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.tmpl", view.WithSession(c, view.Data{
			"FieldErrors": validation.ToDetails(err),
			"Email":       c.PostForm("email"),
		}))
		return
	}

	signed, err := h.Svc.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithFields(logrus.Fields{
				"email":      form.Email,
				"ip":         clientIP(c),
				"request_id": c.GetString("request_id"),
			}).Info("login failed")
		}
		flash.Add(c, flash.Error, application.SignInErrorMessage(err))
		c.HTML(http.StatusOK, "login.tmpl", view.WithSession(c, view.Data{"Email": form.Email}))
		return
	}

	sess.Set("uid", signed.UID)
	sess.Set("email", signed.Email)
	sess.Set("id_token", signed.IDToken)
	if err := sess.Save(); err != nil {
		flash.Add(c, flash.Error, application.MsgAuthGeneric)
		c.HTML(http.StatusOK, "login.tmpl", view.WithSession(c, view.Data{"Email": form.Email}))
		return
	}

	flash.Add(c, flash.Success, "Acceso correcto a la Tienda de Ropa")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout flushes the whole session unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	flash.Add(c, flash.Info, "Has cerrado sesión correctamente")
	c.Redirect(http.StatusSeeOther, "/login")
}

// Dashboard renders the seller's profile. A failed read reports the error
// on the page itself, it does not redirect.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	sess := sessions.Default(c)
	uid, _ := sess.Get("uid").(string)
	email, _ := sess.Get("email").(string)

	profile, err := h.Svc.DashboardProfile(c.Request.Context(), uid, email)
	if err != nil {
		flash.Add(c, flash.Error, "Error al cargar los datos")
		c.HTML(http.StatusOK, "dashboard.tmpl", view.WithSession(c, nil))
		return
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", view.WithSession(c, view.Data{"Profile": profile}))
}
