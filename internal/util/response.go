package util

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fail writes the error envelope with the real status code. Anything
// that is not an HTTPError is an unexpected persistence or internal
// fault; its detail is surfaced only in debug mode.
func Fail(c *gin.Context, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, gin.H{
			"status":      "error",
			"description": httpErr.Description,
		})
		return
	}

	log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	description := "internal server error"
	if gin.Mode() == gin.DebugMode {
		description = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":      "error",
		"description": description,
	})
}
