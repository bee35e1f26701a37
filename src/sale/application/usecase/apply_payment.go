package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Maximuscb/APOS-sub001/src/sale/application/request"
	"github.com/Maximuscb/APOS-sub001/src/sale/application/response"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/port"
	"github.com/Maximuscb/APOS-sub001/src/sale/infrastructure/state"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/metrics"
)

// ApplyPaymentUseCase aplica un pago contra la venta actual y refresca
// el resumen. Patrón mutate-then-refresh: si el pago entró pero el
// refresco falló, el estado del servidor ya avanzó; la vista local se
// marca "posiblemente desactualizada" en lugar de fallar o mentir.
type ApplyPaymentUseCase struct {
	saleService port.SaleService
	workspaces  *state.WorkspaceStore
}

// NewApplyPaymentUseCase crea una nueva instancia del caso de uso
func NewApplyPaymentUseCase(saleService port.SaleService, workspaces *state.WorkspaceStore) *ApplyPaymentUseCase {
	return &ApplyPaymentUseCase{
		saleService: saleService,
		workspaces:  workspaces,
	}
}

// Execute aplica el pago y refresca venta + resumen
func (uc *ApplyPaymentUseCase) Execute(ctx context.Context, userID, storeID, saleID uuid.UUID, authToken string, req *request.ApplyPaymentRequest) (*response.WorkspaceView, error) {
	// Validaciones locales antes de cualquier llamada
	if req.TenderType == "" {
		return nil, entity.ErrTenderTypeRequired
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, entity.ErrInvalidPaymentAmount
	}

	ws, release, err := uc.workspaces.Acquire(userID, storeID)
	if err != nil {
		return nil, err
	}
	defer release()

	if !ws.HasCurrentSale(saleID) {
		return nil, entity.ErrSaleNotCurrent
	}

	payment, err := uc.saleService.ApplyPayment(ctx, storeID, saleID, req.TenderType, req.Amount, req.Reference, authToken)
	if err != nil {
		// Sin mutación optimista: el resumen anterior sigue en pie
		return nil, fmt.Errorf("error applying payment: %w", err)
	}
	metrics.PaymentsApplied.Inc()
	log.Printf("💰 Payment applied: sale=%s tender=%s amount=%s payment=%s", saleID, req.TenderType, req.Amount, payment.ID)

	uc.refresh(ctx, ws, storeID, saleID, authToken)

	return response.NewWorkspaceView(ws), nil
}

// refresh trae la venta y el resumen canónicos. Un fallo acá es
// no-fatal: el pago ya entró, solo se marca la vista como desactualizada.
func (uc *ApplyPaymentUseCase) refresh(ctx context.Context, ws *entity.Workspace, storeID, saleID uuid.UUID, authToken string) {
	sale, err := uc.saleService.GetSale(ctx, storeID, saleID, authToken)
	if err != nil {
		log.Printf("⚠️  Post-payment sale refresh failed (view may be out of date): %v", err)
		ws.MarkStale()
		metrics.StaleRefreshes.Inc()
		return
	}
	if err := ws.RefreshSale(sale); err != nil {
		log.Printf("⚠️  Discarding stale sale refresh for sale %s", saleID)
		return
	}

	summary, err := uc.saleService.GetPaymentSummary(ctx, storeID, saleID, authToken)
	if err != nil {
		log.Printf("⚠️  Post-payment summary refresh failed (view may be out of date): %v", err)
		ws.MarkStale()
		metrics.StaleRefreshes.Inc()
		return
	}
	if err := ws.ApplySummary(saleID, *summary); err != nil {
		log.Printf("⚠️  Discarding stale summary refresh for sale %s", saleID)
	}
}
