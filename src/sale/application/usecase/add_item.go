package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/sale/application/request"
	"github.com/Maximuscb/APOS-sub001/src/sale/application/response"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/sale/domain/port"
	"github.com/Maximuscb/APOS-sub001/src/sale/infrastructure/state"
)

// AddItemUseCase agrega un producto al carrito actual. La respuesta del
// servidor trae la línea canónica (cantidad ya acumulada) y acá solo se
// mergea por identidad; el cliente nunca suma cantidades por su cuenta.
type AddItemUseCase struct {
	saleService port.SaleService
	workspaces  *state.WorkspaceStore
}

// NewAddItemUseCase crea una nueva instancia del caso de uso
func NewAddItemUseCase(saleService port.SaleService, workspaces *state.WorkspaceStore) *AddItemUseCase {
	return &AddItemUseCase{
		saleService: saleService,
		workspaces:  workspaces,
	}
}

// Execute agrega el producto a la venta indicada
func (uc *AddItemUseCase) Execute(ctx context.Context, userID, storeID, saleID uuid.UUID, authToken string, req *request.AddItemRequest) (*response.WorkspaceView, error) {
	// Validaciones locales antes de cualquier llamada
	if req.ProductID == uuid.Nil {
		return nil, entity.ErrProductIDRequired
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, entity.ErrInvalidQuantity
	}

	ws, release, err := uc.workspaces.Acquire(userID, storeID)
	if err != nil {
		return nil, err
	}
	defer release()

	if !ws.HasCurrentSale(saleID) {
		return nil, entity.ErrSaleNotCurrent
	}

	line, err := uc.saleService.AddLine(ctx, storeID, saleID, req.ProductID, quantity, authToken)
	if err != nil {
		// Sin mutación optimista: el carrito local queda como estaba
		return nil, fmt.Errorf("error adding item: %w", err)
	}

	if err := ws.ApplyLine(saleID, *line); err != nil {
		if errors.Is(err, entity.ErrStaleResponse) {
			// La venta cambió mientras la respuesta estaba en vuelo:
			// se descarta sin tocar el estado
			log.Printf("⚠️  Discarding stale add-item response for sale %s", saleID)
			return response.NewWorkspaceView(ws), nil
		}
		return nil, err
	}

	return response.NewWorkspaceView(ws), nil
}
