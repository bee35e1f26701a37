package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/sale/application/request"
	"github.com/Maximuscb/APOS-sub001/src/sale/application/response"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/port"
	"github.com/Maximuscb/APOS-sub001/src/sale/infrastructure/state"
)

// CreateDraftSaleUseCase abre el carrito del workspace: una venta DRAFT
// atada a la sesión de caja. Si el workspace ya tiene un draft vigente
// la operación es idempotente y devuelve el actual.
type CreateDraftSaleUseCase struct {
	saleService port.SaleService
	workspaces  *state.WorkspaceStore
}

// NewCreateDraftSaleUseCase crea una nueva instancia del caso de uso
func NewCreateDraftSaleUseCase(saleService port.SaleService, workspaces *state.WorkspaceStore) *CreateDraftSaleUseCase {
	return &CreateDraftSaleUseCase{
		saleService: saleService,
		workspaces:  workspaces,
	}
}

// Execute asegura que el workspace tenga un carrito actual
func (uc *CreateDraftSaleUseCase) Execute(ctx context.Context, userID, storeID uuid.UUID, authToken string, req *request.CreateDraftSaleRequest) (*response.WorkspaceView, error) {
	ws, release, err := uc.workspaces.Acquire(userID, storeID)
	if err != nil {
		return nil, err
	}
	defer release()

	ws.BindSession(req.SessionID, req.RegisterID)

	// Idempotente: si ya hay draft vigente no se abre otro
	if ws.Sale != nil {
		return response.NewWorkspaceView(ws), nil
	}

	sale, err := uc.saleService.CreateSale(ctx, storeID, req.SessionID, req.RegisterID, authToken)
	if err != nil {
		return nil, fmt.Errorf("error creating draft sale: %w", err)
	}

	ws.BeginSale(sale)
	log.Printf("🛒 Draft sale opened: sale=%s doc=%s session=%s", sale.ID, sale.DocumentNumber, req.SessionID)

	return response.NewWorkspaceView(ws), nil
}
