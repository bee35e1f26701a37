package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/sale/application/response"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/port"
	"github.com/Maximuscb/APOS-sub001/src/sale/infrastructure/state"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/eventbus"
)

// CompleteSaleUseCase completa la venta actual: la compuerta es
// remaining ≤ 0 en el último resumen conocido, ninguna otra. Al
// completar se postea, se publica el evento para el journal y las
// métricas, y se abre el siguiente draft.
type CompleteSaleUseCase struct {
	saleService port.SaleService
	workspaces  *state.WorkspaceStore
	bus         *eventbus.Bus
}

// NewCompleteSaleUseCase crea una nueva instancia del caso de uso
func NewCompleteSaleUseCase(saleService port.SaleService, workspaces *state.WorkspaceStore, bus *eventbus.Bus) *CompleteSaleUseCase {
	return &CompleteSaleUseCase{
		saleService: saleService,
		workspaces:  workspaces,
		bus:         bus,
	}
}

// SaleCompletedPayload datos que viajan con el evento de venta completada
type SaleCompletedPayload struct {
	Sale    *entity.Sale
	Summary *entity.PaymentSummary
}

// Execute completa la venta y deja el próximo draft listo
func (uc *CompleteSaleUseCase) Execute(ctx context.Context, userID, storeID, saleID uuid.UUID, authToken string) (*response.PostSaleResponse, error) {
	ws, release, err := uc.workspaces.Acquire(userID, storeID)
	if err != nil {
		return nil, err
	}
	defer release()

	if !ws.HasCurrentSale(saleID) {
		return nil, entity.ErrSaleNotCurrent
	}
	if ws.Summary == nil {
		return nil, entity.ErrNoPaymentSummary
	}
	if !ws.CanComplete() {
		return nil, entity.ErrBalanceOutstanding
	}

	summary := *ws.Summary

	posted, err := uc.saleService.PostSale(ctx, storeID, saleID, authToken)
	if err != nil {
		// El resumen local queda como estaba; el cajero puede reintentar
		return nil, fmt.Errorf("error completing sale: %w", err)
	}

	completed, err := ws.CompleteSale(saleID)
	if err != nil {
		// No debería pasar bajo el lock del workspace; se registra y sigue
		log.Printf("⚠️  Workspace out of sync completing sale %s: %v", saleID, err)
		completed = posted
	}
	completed.Status = entity.SaleStatusPosted

	uc.bus.Publish(eventbus.Event{
		Type:        eventbus.EventSaleCompleted,
		AggregateID: saleID.String(),
		StoreID:     storeID.String(),
		UserID:      userID.String(),
		Payload: SaleCompletedPayload{
			Sale:    posted,
			Summary: &summary,
		},
	})

	nextDraft(ctx, uc.saleService, ws, storeID, authToken)

	log.Printf("✅ Sale completed: sale=%s doc=%s paid=%s change=%s", saleID, posted.DocumentNumber, summary.Paid, summary.ChangeDue)
	return &response.PostSaleResponse{
		Posted:    posted,
		Workspace: response.NewWorkspaceView(ws),
	}, nil
}
