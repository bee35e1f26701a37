package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	sharedController "github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/controller"
	"github.com/Maximuscb/APOS-sub001/src/tasks/application/usecase"
)

// TaskController maneja las peticiones HTTP del panel de pendientes
type TaskController struct {
	listTasksUC *usecase.ListTasksUseCase
}

// NewTaskController crea una nueva instancia del controlador
func NewTaskController(listTasksUC *usecase.ListTasksUseCase) *TaskController {
	return &TaskController{listTasksUC: listTasksUC}
}

// RegisterRoutes registra las rutas del controlador
func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tasks", c.ListTasks)

	log.Println("Rutas Task disponibles:")
	log.Println("  GET    /api/v1/tasks")
}

// ListTasks retorna tareas pendientes y anuncios de la tienda
func (c *TaskController) ListTasks(ctx *gin.Context) {
	_, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	tasks, err := c.listTasksUC.Execute(ctx.Request.Context(), storeID, authToken)
	if err != nil {
		log.Printf("Error listing tasks: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "Error listing tasks",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
