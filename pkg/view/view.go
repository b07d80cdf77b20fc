// Package view builds the data map handed to server-rendered templates.
package view

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/dmarquezv/tiendaropa/pkg/flash"
)

// Data is the bag of values a template renders from.
type Data map[string]any

// WithSession decorates data with the signed-in seller (when present) and
// drains pending flash notices into it.
func WithSession(c *gin.Context, data Data) Data {
	if data == nil {
		data = Data{}
	}
	sess := sessions.Default(c)
	if v, ok := sess.Get("email").(string); ok && v != "" {
		data["SellerEmail"] = v
	}
	if v, ok := sess.Get("uid").(string); ok && v != "" {
		data["SellerUID"] = v
	}
	if msgs := flash.Take(c); len(msgs) > 0 {
		data["Flashes"] = msgs
	}
	return data
}
