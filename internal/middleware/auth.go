package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabelsky/todo-flask-netology/internal/models"
	"github.com/tabelsky/todo-flask-netology/internal/util"
)

// TokenKey is the gin context key holding the resolved *models.Token.
const TokenKey = "authToken"

// Auth resolves the bearer token from the Authorization header into
// the issuing token row and its owning user. It fails closed: no
// header and unknown token are both 401.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.GetHeader("Authorization")
		if parts := strings.SplitN(value, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			value = parts[1]
		}
		if value == "" {
			util.Fail(c, util.Unauthorized("token not found"))
			c.Abort()
			return
		}

		var token models.Token
		err := db.WithContext(c.Request.Context()).
			Preload("User").
			Where("value = ?", value).
			First(&token).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.Fail(c, util.Unauthorized("invalid token"))
			} else {
				util.Fail(c, err)
			}
			c.Abort()
			return
		}

		c.Set(TokenKey, &token)
		c.Next()
	}
}
