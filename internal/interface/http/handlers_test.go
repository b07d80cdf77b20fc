package handlers_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	handlers "github.com/dmarquezv/tiendaropa/internal/interface/http"
	"github.com/dmarquezv/tiendaropa/internal/router"
	"github.com/dmarquezv/tiendaropa/internal/router/modules"
	"github.com/dmarquezv/tiendaropa/pkg/validation"
)

// test templates render just enough to assert on: flash notices and the few
// fields each page shows
func testTemplates(t *testing.T) *template.Template {
	t.Helper()
	root := template.New("_")
	for name, body := range map[string]string{
		"login.tmpl":            `login {{with .Email}}email={{.}}{{end}} {{range .Flashes}}[{{.Level}}]{{.Text}}{{end}}`,
		"registro.tmpl":         `registro {{with .Mensaje}}{{.}}{{end}}{{with .Error}}{{.}}{{end}} {{range .Flashes}}[{{.Level}}]{{.Text}}{{end}}`,
		"dashboard.tmpl":        `dashboard {{with .Profile}}uid={{.UID}} email={{.Email}} rol={{.Role}}{{end}} {{range .Flashes}}[{{.Level}}]{{.Text}}{{end}}`,
		"productos_listar.tmpl": `listar {{range .Products}}{{.ID}}:{{.Name}}/{{.Size}}/{{.Price}};{{end}} {{range .Flashes}}[{{.Level}}]{{.Text}}{{end}}`,
		"productos_form.tmpl":   `form {{with .Form}}{{.Nombre}}/{{.Talla}}/{{.Precio}}{{end}} {{range .Flashes}}[{{.Level}}]{{.Text}}{{end}}`,
		"productos_editar.tmpl": `editar {{with .Product}}{{.Name}}/{{.Size}}/{{.Price}}{{end}}{{with .Form}}{{.Nombre}}/{{.Talla}}/{{.Precio}}{{end}} {{range .Flashes}}[{{.Level}}]{{.Text}}{{end}}`,
	} {
		template.Must(root.New(name).Parse(body))
	}
	return root
}

// newTestEngine wires the real modules and middleware around fake services,
// plus a probe route exposing the session content.
func newTestEngine(t *testing.T, auth *handlers.AuthHandler, products *handlers.ProductHandler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))
	r.SetHTMLTemplate(testTemplates(t))

	reg := router.NewRegistry(r)
	if auth != nil {
		reg.Add(modules.NewAuthModule(auth))
	}
	if products != nil {
		reg.Add(modules.NewInventoryModule(products))
	}
	reg.RegisterAll()

	r.GET("/whoami", func(c *gin.Context) {
		sess := sessions.Default(c)
		uid, _ := sess.Get("uid").(string)
		email, _ := sess.Get("email").(string)
		token, _ := sess.Get("id_token").(string)
		c.String(http.StatusOK, "uid=%s email=%s token=%s", uid, email, token)
	})
	r.GET("/seed", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("uid", c.Query("uid"))
		sess.Set("email", c.Query("email"))
		require.NoError(t, sess.Save())
		c.Status(http.StatusOK)
	})

	return r
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func seedSeller(t *testing.T, r *gin.Engine, uid, email string) []*http.Cookie {
	t.Helper()
	w := get(r, "/seed?uid="+uid+"&email="+url.QueryEscape(email), nil)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}
