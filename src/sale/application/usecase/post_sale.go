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
)

// PostSaleUseCase transiciona la venta DRAFT→POSTED y abre inmediatamente
// el siguiente draft, así el workspace nunca queda sin carrito. La
// validación de si la venta puede postearse es del servidor; para el
// camino con compuerta de pagos ver CompleteSaleUseCase.
type PostSaleUseCase struct {
	saleService port.SaleService
	workspaces  *state.WorkspaceStore
}

// NewPostSaleUseCase crea una nueva instancia del caso de uso
func NewPostSaleUseCase(saleService port.SaleService, workspaces *state.WorkspaceStore) *PostSaleUseCase {
	return &PostSaleUseCase{
		saleService: saleService,
		workspaces:  workspaces,
	}
}

// Execute postea la venta y abre el siguiente draft
func (uc *PostSaleUseCase) Execute(ctx context.Context, userID, storeID, saleID uuid.UUID, authToken string) (*response.PostSaleResponse, error) {
	ws, release, err := uc.workspaces.Acquire(userID, storeID)
	if err != nil {
		return nil, err
	}
	defer release()

	if !ws.HasCurrentSale(saleID) {
		return nil, entity.ErrSaleNotCurrent
	}

	posted, err := uc.saleService.PostSale(ctx, storeID, saleID, authToken)
	if err != nil {
		return nil, fmt.Errorf("error posting sale: %w", err)
	}

	nextDraft(ctx, uc.saleService, ws, storeID, authToken)

	return &response.PostSaleResponse{
		Posted:    posted,
		Workspace: response.NewWorkspaceView(ws),
	}, nil
}

// nextDraft abre el draft que reemplaza a la venta cerrada. Si falla, el
// workspace queda sin carrito (marcado stale) y el próximo
// POST /sales/draft lo recupera; el posteo ya sucedió y no se revierte.
func nextDraft(ctx context.Context, saleService port.SaleService, ws *entity.Workspace, storeID uuid.UUID, authToken string) {
	sale, err := saleService.CreateSale(ctx, storeID, ws.SessionID, ws.RegisterID, authToken)
	if err != nil {
		log.Printf("⚠️  Could not open next draft sale: %v", err)
		ws.Clear()
		ws.MarkStale()
		return
	}
	ws.BeginSale(sale)
	log.Printf("🛒 Next draft ready: sale=%s doc=%s", sale.ID, sale.DocumentNumber)
}
