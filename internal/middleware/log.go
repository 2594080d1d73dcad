package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tabelsky/todo-flask-netology/internal/models"
)

// Audit logs mutating requests of authenticated users after the
// handler has run.
func Audit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		v, ok := c.Get(TokenKey)
		if !ok {
			return
		}
		token, ok := v.(*models.Token)
		if !ok || token == nil {
			return
		}

		log.Printf("audit: user=%d %s %s -> %d",
			token.UserID, c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
