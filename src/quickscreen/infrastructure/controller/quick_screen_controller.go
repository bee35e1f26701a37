package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Maximuscb/APOS-sub001/src/quickscreen/application/request"
	"github.com/Maximuscb/APOS-sub001/src/quickscreen/application/usecase"
	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/entity"
	sharedController "github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/controller"
)

// QuickScreenController maneja las peticiones HTTP de las pantallas rápidas
type QuickScreenController struct {
	loadUC    *usecase.LoadQuickScreensUseCase
	addUC     *usecase.AddButtonUseCase
	removeUC  *usecase.RemoveButtonUseCase
	reorderUC *usecase.ReorderButtonsUseCase
	renameUC  *usecase.RenameScreenUseCase
}

// NewQuickScreenController crea una nueva instancia del controlador
func NewQuickScreenController(
	loadUC *usecase.LoadQuickScreensUseCase,
	addUC *usecase.AddButtonUseCase,
	removeUC *usecase.RemoveButtonUseCase,
	reorderUC *usecase.ReorderButtonsUseCase,
	renameUC *usecase.RenameScreenUseCase,
) *QuickScreenController {
	return &QuickScreenController{
		loadUC:    loadUC,
		addUC:     addUC,
		removeUC:  removeUC,
		reorderUC: reorderUC,
		renameUC:  renameUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *QuickScreenController) RegisterRoutes(router *gin.RouterGroup) {
	screens := router.Group("/quick-screens")
	{
		screens.GET("", c.LoadScreens)
		screens.POST("/buttons", c.AddButton)
		screens.DELETE("/buttons", c.RemoveButton)
		screens.PUT("/order", c.ReorderButtons)
		screens.PUT("/name", c.RenameScreen)
	}

	log.Println("Rutas QuickScreen disponibles:")
	log.Println("  GET    /api/v1/quick-screens")
	log.Println("  POST   /api/v1/quick-screens/buttons")
	log.Println("  DELETE /api/v1/quick-screens/buttons")
	log.Println("  PUT    /api/v1/quick-screens/order")
	log.Println("  PUT    /api/v1/quick-screens/name")
}

// LoadScreens carga las pantallas del usuario (defaults si no hay)
func (c *QuickScreenController) LoadScreens(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	resp, err := c.loadUC.Execute(ctx.Request.Context(), userID, storeID, authToken)
	if err != nil {
		log.Printf("Error loading quick screens: %v", err)
		c.writeError(ctx, err, "Error loading quick screens")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AddButton agrega un botón de producto a una pantalla
func (c *QuickScreenController) AddButton(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	var req request.AddButtonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.addUC.Execute(ctx.Request.Context(), userID, storeID, authToken, &req)
	if err != nil {
		log.Printf("Error adding quick screen button: %v", err)
		c.writeError(ctx, err, "Error adding button")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RemoveButton saca un botón de una pantalla
func (c *QuickScreenController) RemoveButton(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	var req request.RemoveButtonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.removeUC.Execute(ctx.Request.Context(), userID, storeID, authToken, &req)
	if err != nil {
		log.Printf("Error removing quick screen button: %v", err)
		c.writeError(ctx, err, "Error removing button")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ReorderButtons aplica el nuevo orden de una pantalla
func (c *QuickScreenController) ReorderButtons(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	var req request.ReorderButtonsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.reorderUC.Execute(ctx.Request.Context(), userID, storeID, authToken, &req)
	if err != nil {
		log.Printf("Error reordering quick screen buttons: %v", err)
		c.writeError(ctx, err, "Error reordering buttons")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RenameScreen renombra una pantalla
func (c *QuickScreenController) RenameScreen(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	var req request.RenameScreenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.renameUC.Execute(ctx.Request.Context(), userID, storeID, authToken, &req)
	if err != nil {
		log.Printf("Error renaming quick screen: %v", err)
		c.writeError(ctx, err, "Error renaming screen")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// writeError mapea los errores de dominio a códigos HTTP
func (c *QuickScreenController) writeError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrScreenNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Quick screen not found"})
	case errors.Is(err, entity.ErrScreenNameRequired),
		errors.Is(err, entity.ErrProductNotInCatalog),
		errors.Is(err, entity.ErrInvalidOrder):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   fallback,
			"details": err.Error(),
		})
	}
}
