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

// TodoHandler serves the authenticated todo endpoints. Every
// id-scoped operation loads the item first and checks ownership
// before touching it.
type TodoHandler struct {
	DB *gorm.DB
}

func NewTodoHandler(db *gorm.DB) *TodoHandler {
	return &TodoHandler{DB: db}
}

// Create adds a todo owned by the authenticated user.
func (h *TodoHandler) Create(c *gin.Context) {
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
	payload, ferr := schema.ValidateCreateTodo(raw)
	if ferr != nil {
		util.Fail(c, util.BadRequest(ferr))
		return
	}

	todo := models.Todo{
		Name:      payload.Name,
		Important: payload.Important,
		UserID:    token.UserID,
	}
	db := h.DB.WithContext(c.Request.Context())
	if err := crud.Create(db, &todo); err != nil {
		util.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": todo.ID})
}

// List returns all todos of the authenticated user.
func (h *TodoHandler) List(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		util.Fail(c, err)
		return
	}

	db := h.DB.WithContext(c.Request.Context())
	todos := make([]models.Todo, 0)
	if err := db.Where("user_id = ?", token.UserID).Order("id").Find(&todos).Error; err != nil {
		util.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

// Get returns a single todo by id if the authenticated user owns it.
func (h *TodoHandler) Get(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	id, err := parseID(c)
	if err != nil {
		util.Fail(c, err)
		return
	}

	db := h.DB.WithContext(c.Request.Context())
	todo, err := crud.GetByID[models.Todo](db, id)
	if err != nil {
		util.Fail(c, err)
		return
	}
	if err := auth.CheckOwner(todo, token.UserID); err != nil {
		util.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, todo)
}

// Update applies a partial payload to an owned todo. Marking the item
// done sets the completion timestamp in the same persisted update.
func (h *TodoHandler) Update(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	id, err := parseID(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	raw, err := bindPayload(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	patch, ferr := schema.ValidateTodoPatch(raw)
	if ferr != nil {
		util.Fail(c, util.BadRequest(ferr))
		return
	}

	db := h.DB.WithContext(c.Request.Context())
	todo, err := crud.GetByID[models.Todo](db, id)
	if err != nil {
		util.Fail(c, err)
		return
	}
	if err := auth.CheckOwner(todo, token.UserID); err != nil {
		util.Fail(c, err)
		return
	}
	if err := crud.UpdateItem(db, todo, patch); err != nil {
		util.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": todo.ID})
}

// Delete removes an owned todo.
func (h *TodoHandler) Delete(c *gin.Context) {
	token, err := currentToken(c)
	if err != nil {
		util.Fail(c, err)
		return
	}
	id, err := parseID(c)
	if err != nil {
		util.Fail(c, err)
		return
	}

	db := h.DB.WithContext(c.Request.Context())
	todo, err := crud.GetByID[models.Todo](db, id)
	if err != nil {
		util.Fail(c, err)
		return
	}
	if err := auth.CheckOwner(todo, token.UserID); err != nil {
		util.Fail(c, err)
		return
	}
	if err := crud.Delete(db, todo); err != nil {
		util.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
