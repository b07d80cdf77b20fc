package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))

	// seeds the session from query params, standing in for a login
	r.GET("/seed", func(c *gin.Context) {
		sess := sessions.Default(c)
		if uid := c.Query("uid"); uid != "" {
			sess.Set("uid", uid)
		}
		if tok := c.Query("token"); tok != "" {
			sess.Set("id_token", tok)
		}
		require.NoError(t, sess.Save())
		c.Status(http.StatusOK)
	})

	guarded := r.Group("/")
	guarded.Use(RequireSeller())
	guarded.GET("/panel", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func seedSession(t *testing.T, r *gin.Engine, query string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/seed"+query, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func getPanel(r *gin.Engine, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panel", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
		"sub": "u1",
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return tok
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	r := newGuardedRouter(t)

	w := getPanel(r, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestGuardPassesAuthenticatedSessionThrough(t *testing.T) {
	r := newGuardedRouter(t)
	cookies := seedSession(t, r, "?uid=u1")

	w := getPanel(r, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestGuardAcceptsLiveToken(t *testing.T) {
	r := newGuardedRouter(t)
	tok := signedToken(t, time.Now().Add(time.Hour))
	cookies := seedSession(t, r, "?uid=u1&token="+tok)

	w := getPanel(r, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardFlushesExpiredTokenSession(t *testing.T) {
	r := newGuardedRouter(t)
	tok := signedToken(t, time.Now().Add(-time.Hour))
	cookies := seedSession(t, r, "?uid=u1&token="+tok)

	w := getPanel(r, cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// the flushed session stays anonymous on the next request
	w2 := getPanel(r, append(cookies, w.Result().Cookies()...))
	assert.Equal(t, http.StatusSeeOther, w2.Code)
}

func TestGuardIgnoresOpaqueToken(t *testing.T) {
	// a token that is not a readable JWT is left for the provider to reject
	r := newGuardedRouter(t)
	cookies := seedSession(t, r, "?uid=u1&token=opaque")

	w := getPanel(r, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}
