package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dmarquezv/tiendaropa/pkg/flash"
)

// RequireSeller guards routes that need an authenticated session. Requests
// without a seller id in the session get a warning notice and a redirect to
// login; the wrapped handler never runs. A session whose stored id token has
// already expired is flushed and treated the same way. Side effects happen
// only on the rejection paths.
func RequireSeller() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		uid, _ := sess.Get("uid").(string)
		if uid == "" {
			flash.Add(c, flash.Warning, "No has iniciado sesión")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		if token, _ := sess.Get("id_token").(string); token != "" && tokenExpired(token) {
			sess.Clear()
			_ = sess.Save()
			flash.Add(c, flash.Warning, "Tu sesión ha expirado, inicia sesión de nuevo")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// tokenExpired checks the exp claim without verifying the signature. The
// token was issued by the provider and is never used for authorization
// beyond presence; only its lifetime matters here.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// not a JWT we can read; leave it to the provider to reject
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
