package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
)

// SaleService define las operaciones de venta del back-office. El
// servidor es la única autoridad aritmética: acumula cantidades, calcula
// totales de línea y recalcula el resumen de pagos; este puerto solo
// transporta los resultados canónicos.
type SaleService interface {
	// CreateSale abre una venta draft atada a la sesión
	CreateSale(ctx context.Context, storeID, sessionID uuid.UUID, registerID *uuid.UUID, authToken string) (*entity.Sale, error)

	// AddLine agrega (o acumula) un producto y retorna la línea canónica:
	// si el producto ya estaba, la respuesta trae la cantidad acumulada
	// bajo la misma identidad de línea
	AddLine(ctx context.Context, storeID, saleID, productID uuid.UUID, quantity int, authToken string) (*entity.SaleLine, error)

	// GetSale retorna la vista canónica de la venta con sus líneas
	GetSale(ctx context.Context, storeID, saleID uuid.UUID, authToken string) (*entity.Sale, error)

	// PostSale transiciona DRAFT→POSTED
	PostSale(ctx context.Context, storeID, saleID uuid.UUID, authToken string) (*entity.Sale, error)

	// ApplyPayment aplica un pago contra la venta
	ApplyPayment(ctx context.Context, storeID, saleID uuid.UUID, tenderType entity.TenderType, amount decimal.Decimal, reference, authToken string) (*entity.Payment, error)

	// GetPaymentSummary retorna due/paid/remaining/change recalculados
	GetPaymentSummary(ctx context.Context, storeID, saleID uuid.UUID, authToken string) (*entity.PaymentSummary, error)

	// VoidPayment anula un pago con motivo obligatorio
	VoidPayment(ctx context.Context, storeID, paymentID uuid.UUID, reason, authToken string) error
}
