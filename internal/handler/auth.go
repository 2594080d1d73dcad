package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabelsky/todo-flask-netology/internal/auth"
	"github.com/tabelsky/todo-flask-netology/internal/crud"
	"github.com/tabelsky/todo-flask-netology/internal/models"
	"github.com/tabelsky/todo-flask-netology/internal/schema"
	"github.com/tabelsky/todo-flask-netology/internal/util"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

// Login checks the submitted credentials and issues a fresh opaque
// token. An unknown name is NotFound, a wrong password is
// Unauthenticated; the two conditions are deliberately distinct.
func (h *AuthHandler) Login(c *gin.Context) {
	raw, err := bindPayload(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	payload, ferr := schema.ValidateLogin(raw)
	if ferr != nil {
		util.Fail(c, util.BadRequest(ferr))
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var user models.User
	if err := db.Where("name = ?", payload.Name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Fail(c, util.NotFound("user not found"))
		} else {
			util.Fail(c, err)
		}
		return
	}

	if !auth.CheckPassword(payload.Password, user.Password) {
		util.Fail(c, util.Unauthorized("invalid password"))
		return
	}

	token := models.Token{UserID: user.ID}
	if err := crud.Create(db, &token); err != nil {
		util.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token.Value})
}
