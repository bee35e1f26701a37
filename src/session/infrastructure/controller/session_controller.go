package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/session/application/request"
	"github.com/Maximuscb/APOS-sub001/src/session/application/usecase"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
	sharedController "github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/controller"
)

// SessionController maneja las peticiones HTTP del workspace de caja
type SessionController struct {
	resolveSessionUC *usecase.ResolveSessionUseCase
	openShiftUC      *usecase.OpenShiftUseCase
	closeShiftUC     *usecase.CloseShiftUseCase
}

// NewSessionController crea una nueva instancia del controlador
func NewSessionController(
	resolveSessionUC *usecase.ResolveSessionUseCase,
	openShiftUC *usecase.OpenShiftUseCase,
	closeShiftUC *usecase.CloseShiftUseCase,
) *SessionController {
	return &SessionController{
		resolveSessionUC: resolveSessionUC,
		openShiftUC:      openShiftUC,
		closeShiftUC:     closeShiftUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SessionController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/workspace/resolve", c.ResolveSession)

	shifts := router.Group("/shifts")
	{
		shifts.POST("/open", c.OpenShift)
		shifts.POST("/:session_id/close", c.CloseShift)
	}

	log.Println("Rutas Session disponibles:")
	log.Println("  POST   /api/v1/workspace/resolve")
	log.Println("  POST   /api/v1/shifts/open")
	log.Println("  POST   /api/v1/shifts/:session_id/close")
}

// ResolveSession resuelve la sesión del usuario al entrar al workspace
func (c *SessionController) ResolveSession(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	resp, err := c.resolveSessionUC.Execute(ctx.Request.Context(), userID, storeID, authToken)
	if err != nil {
		log.Printf("Error resolving session: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "Error resolving session",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// OpenShift abre un turno sobre una caja
func (c *SessionController) OpenShift(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	var req request.OpenShiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	session, err := c.openShiftUC.Execute(ctx.Request.Context(), userID, storeID, authToken, &req)
	if err != nil {
		log.Printf("Error opening shift: %v", err)

		switch {
		case errors.Is(err, entity.ErrRegisterInUse):
			// Conflicto recuperable: el cliente refresca la selección
			ctx.JSON(http.StatusConflict, gin.H{
				"error": "Register is already owned by another user",
			})
		case errors.Is(err, entity.ErrRegisterNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": "Register not found",
			})
		case errors.Is(err, entity.ErrInvalidCashAmount), errors.Is(err, entity.ErrRegisterIDRequired):
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			ctx.JSON(http.StatusBadGateway, gin.H{
				"error":   "Error opening shift",
				"details": err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, session)
}

// CloseShift cierra el turno con el arqueo de caja
func (c *SessionController) CloseShift(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session_id format"})
		return
	}

	var req request.CloseShiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.closeShiftUC.Execute(ctx.Request.Context(), userID, storeID, sessionID, authToken, &req)
	if err != nil {
		log.Printf("Error closing shift: %v", err)

		switch {
		case errors.Is(err, entity.ErrInvalidCashAmount):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrSessionNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		default:
			ctx.JSON(http.StatusBadGateway, gin.H{
				"error":   "Error closing shift",
				"details": err.Error(),
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
