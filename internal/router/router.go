package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tabelsky/todo-flask-netology/internal/config"
	"github.com/tabelsky/todo-flask-netology/internal/handler"
	"github.com/tabelsky/todo-flask-netology/internal/middleware"
)

// SetupRouter wires the route table: content-type gate first, then
// validation inside the handlers, authentication and ownership on the
// protected group.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequireJSON())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userHandler := handler.NewUserHandler(db, cfg.Security.BcryptCost)
	authHandler := handler.NewAuthHandler(db)
	todoHandler := handler.NewTodoHandler(db)

	r.POST("/user", userHandler.Register)
	r.POST("/login", authHandler.Login)

	protected := r.Group("", middleware.Auth(db), middleware.Audit())

	protected.GET("/user", userHandler.Get)
	protected.PATCH("/user", userHandler.Update)
	protected.DELETE("/user", userHandler.Delete)

	protected.POST("/todo", todoHandler.Create)
	protected.GET("/todo", todoHandler.List)
	protected.GET("/todo/:id", todoHandler.Get)
	protected.PATCH("/todo/:id", todoHandler.Update)
	protected.DELETE("/todo/:id", todoHandler.Delete)

	return r
}
