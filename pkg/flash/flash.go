// Package flash stores one-shot notices in the session, drained on the next
// rendered page.
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Message is one pending notice.
type Message struct {
	Level Level
	Text  string
}

func init() {
	// cookie sessions serialize values with gob
	gob.Register(Message{})
}

// Add queues a notice for the next render. The session save error is
// swallowed: losing a notice must not fail the request it decorates.
func Add(c *gin.Context, level Level, text string) {
	sess := sessions.Default(c)
	sess.AddFlash(Message{Level: level, Text: text})
	_ = sess.Save()
}

// Take drains and returns all pending notices.
func Take(c *gin.Context) []Message {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save() // persist the drain
	msgs := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
