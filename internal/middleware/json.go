package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tabelsky/todo-flask-netology/internal/util"
)

// RequireJSON rejects mutating requests that do not declare a JSON
// content type before any validation runs.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			if c.ContentType() != "application/json" {
				util.Fail(c, util.BadRequest("json format expected"))
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
