package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/sale/application/request"
	"github.com/Maximuscb/APOS-sub001/src/sale/application/usecase"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
	sharedController "github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/controller"
)

// SaleController maneja las peticiones HTTP del carrito y los pagos
type SaleController struct {
	createDraftSaleUC *usecase.CreateDraftSaleUseCase
	addItemUC         *usecase.AddItemUseCase
	postSaleUC        *usecase.PostSaleUseCase
	applyPaymentUC    *usecase.ApplyPaymentUseCase
	completeSaleUC    *usecase.CompleteSaleUseCase
	voidPaymentUC     *usecase.VoidPaymentUseCase
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createDraftSaleUC *usecase.CreateDraftSaleUseCase,
	addItemUC *usecase.AddItemUseCase,
	postSaleUC *usecase.PostSaleUseCase,
	applyPaymentUC *usecase.ApplyPaymentUseCase,
	completeSaleUC *usecase.CompleteSaleUseCase,
	voidPaymentUC *usecase.VoidPaymentUseCase,
) *SaleController {
	return &SaleController{
		createDraftSaleUC: createDraftSaleUC,
		addItemUC:         addItemUC,
		postSaleUC:        postSaleUC,
		applyPaymentUC:    applyPaymentUC,
		completeSaleUC:    completeSaleUC,
		voidPaymentUC:     voidPaymentUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.POST("/draft", c.CreateDraftSale)
		sales.POST("/:sale_id/lines", c.AddItem)
		sales.POST("/:sale_id/post", c.PostSale)
		sales.POST("/:sale_id/payments", c.ApplyPayment)
		sales.POST("/:sale_id/complete", c.CompleteSale)
	}
	router.POST("/payments/:payment_id/void", c.VoidPayment)

	log.Println("Rutas Sale disponibles:")
	log.Println("  POST   /api/v1/sales/draft")
	log.Println("  POST   /api/v1/sales/:sale_id/lines")
	log.Println("  POST   /api/v1/sales/:sale_id/post")
	log.Println("  POST   /api/v1/sales/:sale_id/payments")
	log.Println("  POST   /api/v1/sales/:sale_id/complete")
	log.Println("  POST   /api/v1/payments/:payment_id/void")
}

// CreateDraftSale asegura un carrito DRAFT para el workspace
func (c *SaleController) CreateDraftSale(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	var req request.CreateDraftSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	view, err := c.createDraftSaleUC.Execute(ctx.Request.Context(), userID, storeID, authToken, &req)
	if err != nil {
		log.Printf("Error creating draft sale: %v", err)
		c.writeError(ctx, err, "Error creating draft sale")
		return
	}

	ctx.JSON(http.StatusCreated, view)
}

// AddItem agrega un producto a la venta actual
func (c *SaleController) AddItem(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id format"})
		return
	}

	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	view, err := c.addItemUC.Execute(ctx.Request.Context(), userID, storeID, saleID, authToken, &req)
	if err != nil {
		log.Printf("Error adding item: %v", err)
		c.writeError(ctx, err, "Error adding item")
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// PostSale postea la venta sin pasar por la compuerta de pagos
func (c *SaleController) PostSale(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id format"})
		return
	}

	resp, err := c.postSaleUC.Execute(ctx.Request.Context(), userID, storeID, saleID, authToken)
	if err != nil {
		log.Printf("Error posting sale: %v", err)
		c.writeError(ctx, err, "Error posting sale")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ApplyPayment aplica un pago a la venta actual
func (c *SaleController) ApplyPayment(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id format"})
		return
	}

	var req request.ApplyPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	view, err := c.applyPaymentUC.Execute(ctx.Request.Context(), userID, storeID, saleID, authToken, &req)
	if err != nil {
		log.Printf("Error applying payment: %v", err)
		c.writeError(ctx, err, "Error applying payment")
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// CompleteSale completa la venta si el saldo quedó cubierto
func (c *SaleController) CompleteSale(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id format"})
		return
	}

	resp, err := c.completeSaleUC.Execute(ctx.Request.Context(), userID, storeID, saleID, authToken)
	if err != nil {
		log.Printf("Error completing sale: %v", err)
		c.writeError(ctx, err, "Error completing sale")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// VoidPayment anula un pago con motivo obligatorio
func (c *SaleController) VoidPayment(ctx *gin.Context) {
	userID, storeID, ok := sharedController.WorkspaceHeaders(ctx)
	if !ok {
		return
	}
	authToken := ctx.GetHeader("Authorization")

	paymentID, err := uuid.Parse(ctx.Param("payment_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment_id format"})
		return
	}

	var req request.VoidPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	view, err := c.voidPaymentUC.Execute(ctx.Request.Context(), userID, storeID, paymentID, authToken, &req)
	if err != nil {
		log.Printf("Error voiding payment: %v", err)
		c.writeError(ctx, err, "Error voiding payment")
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// writeError mapea los errores de dominio a códigos HTTP
func (c *SaleController) writeError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, entity.ErrOperationInFlight):
		// Otra operación del mismo workspace sigue en vuelo
		ctx.JSON(http.StatusConflict, gin.H{
			"error": "Another operation is in progress for this workspace",
		})
	case errors.Is(err, entity.ErrSaleNotCurrent), errors.Is(err, entity.ErrNoCurrentSale):
		ctx.JSON(http.StatusConflict, gin.H{
			"error": "Sale is not the current workspace sale",
		})
	case errors.Is(err, entity.ErrBalanceOutstanding), errors.Is(err, entity.ErrNoPaymentSummary):
		ctx.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, entity.ErrSaleNotFound), errors.Is(err, entity.ErrPaymentNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, entity.ErrProductIDRequired),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrTenderTypeRequired),
		errors.Is(err, entity.ErrInvalidPaymentAmount),
		errors.Is(err, entity.ErrVoidReasonRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   fallback,
			"details": err.Error(),
		})
	}
}
