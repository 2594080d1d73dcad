package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tabelsky/todo-flask-netology/internal/middleware"
	"github.com/tabelsky/todo-flask-netology/internal/models"
	"github.com/tabelsky/todo-flask-netology/internal/util"
)

// currentToken returns the token resolved by the auth middleware.
// Routes using it are always registered behind middleware.Auth, so a
// missing token is a wiring bug and reported as unauthenticated.
func currentToken(c *gin.Context) (*models.Token, error) {
	v, ok := c.Get(middleware.TokenKey)
	if !ok {
		return nil, util.Unauthorized("token not found")
	}
	token, ok := v.(*models.Token)
	if !ok || token == nil {
		return nil, util.Unauthorized("token not found")
	}
	return token, nil
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, util.BadRequest("invalid id")
	}
	return uint(id), nil
}

// bindPayload decodes the request body into a raw payload for the
// schema validators.
func bindPayload(c *gin.Context) (map[string]any, error) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		return nil, util.BadRequest("invalid json")
	}
	return raw, nil
}
