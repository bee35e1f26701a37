package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/sale/application/request"
	"github.com/Maximuscb/APOS-sub001/src/sale/application/response"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/port"
	"github.com/Maximuscb/APOS-sub001/src/sale/infrastructure/state"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/metrics"
)

// VoidPaymentUseCase anula un pago. El motivo es obligatorio siempre,
// independiente del estado de la venta.
type VoidPaymentUseCase struct {
	saleService port.SaleService
	workspaces  *state.WorkspaceStore
}

// NewVoidPaymentUseCase crea una nueva instancia del caso de uso
func NewVoidPaymentUseCase(saleService port.SaleService, workspaces *state.WorkspaceStore) *VoidPaymentUseCase {
	return &VoidPaymentUseCase{
		saleService: saleService,
		workspaces:  workspaces,
	}
}

// Execute anula el pago y refresca el resumen de la venta actual (si hay)
func (uc *VoidPaymentUseCase) Execute(ctx context.Context, userID, storeID, paymentID uuid.UUID, authToken string, req *request.VoidPaymentRequest) (*response.WorkspaceView, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, entity.ErrVoidReasonRequired
	}

	ws, release, err := uc.workspaces.Acquire(userID, storeID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := uc.saleService.VoidPayment(ctx, storeID, paymentID, req.Reason, authToken); err != nil {
		return nil, fmt.Errorf("error voiding payment: %w", err)
	}
	log.Printf("🧾 Payment voided: payment=%s reason=%q", paymentID, req.Reason)

	// El resumen de la venta actual quedó viejo: mutate-then-refresh
	if ws.Sale != nil {
		summary, err := uc.saleService.GetPaymentSummary(ctx, storeID, ws.Sale.ID, authToken)
		if err != nil {
			log.Printf("⚠️  Post-void summary refresh failed (view may be out of date): %v", err)
			ws.MarkStale()
			metrics.StaleRefreshes.Inc()
		} else if err := ws.ApplySummary(ws.Sale.ID, *summary); err != nil {
			log.Printf("⚠️  Discarding stale summary refresh after void")
		}
	}

	return response.NewWorkspaceView(ws), nil
}
