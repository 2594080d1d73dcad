package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabelsky/todo-flask-netology/internal/auth"
	"github.com/tabelsky/todo-flask-netology/internal/crud"
	"github.com/tabelsky/todo-flask-netology/internal/models"
	"github.com/tabelsky/todo-flask-netology/internal/schema"
	"github.com/tabelsky/todo-flask-netology/internal/util"
)

// UserHandler serves registration and the authenticated self
// endpoints.
type UserHandler struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserHandler(db *gorm.DB, bcryptCost int) *UserHandler {
	if bcryptCost <= 0 {
		bcryptCost = auth.DefaultBcryptCost
	}
	return &UserHandler{DB: db, BcryptCost: bcryptCost}
}

// Register creates an account. The password is hashed here; the store
// only ever sees the hash.
func (h *UserHandler) Register(c *gin.Context) {
	raw, err := bindPayload(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	payload, ferr := schema.ValidateCreateUser(raw)
	if ferr != nil {
		util.Fail(c, util.BadRequest(ferr))
		return
	}

	hash, err := auth.HashPassword(payload.Password, h.BcryptCost)
	if err != nil {
		util.Fail(c, err)
		return
	}

	user := models.User{Name: payload.Name, Password: hash}
	db := h.DB.WithContext(c.Request.Context())
	if err := crud.Create(db, &user); err != nil {
		util.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID})
}

// Get returns the authenticated user with the ids of its todos.
func (h *UserHandler) Get(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		util.Fail(c, err)
		return
	}

	db := h.DB.WithContext(c.Request.Context())
	var todos []models.Todo
	if err := db.Where("user_id = ?", token.UserID).Order("id").Find(&todos).Error; err != nil {
		util.Fail(c, err)
		return
	}
	ids := make([]uint, 0, len(todos))
	for _, todo := range todos {
		ids = append(ids, todo.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    token.User.ID,
		"name":  token.User.Name,
		"todos": ids,
	})
}

// Update applies a partial payload to the authenticated user. A new
// name re-checks uniqueness, a new password is re-hashed.
func (h *UserHandler) Update(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	raw, err := bindPayload(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	patch, ferr := schema.ValidateUserPatch(raw)
	if ferr != nil {
		util.Fail(c, util.BadRequest(ferr))
		return
	}

	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password, h.BcryptCost)
		if err != nil {
			util.Fail(c, err)
			return
		}
		patch.Password = &hash
	}

	db := h.DB.WithContext(c.Request.Context())
	if err := crud.UpdateItem(db, &token.User, patch); err != nil {
		util.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": token.User.ID})
}

// Delete removes the authenticated user. The store cascades the
// deletion to all owned tokens and todos, which also revokes the
// token this request was made with.
func (h *UserHandler) Delete(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		util.Fail(c, err)
		return
	}

	db := h.DB.WithContext(c.Request.Context())
	if err := crud.Delete(db, &token.User); err != nil {
		util.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
