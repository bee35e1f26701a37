package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/session/application/request"
	"github.com/Maximuscb/APOS-sub001/src/session/application/response"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/port"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/eventbus"
)

// CloseShiftUseCase cierra el turno con el arqueo de caja. El esperado y
// la diferencia los calcula el servidor; acá solo se valida el conteo,
// se invalida el cache local y se avisa al resto por el bus.
type CloseShiftUseCase struct {
	registerService port.RegisterService
	sessionCache    port.SessionCache
	bus             *eventbus.Bus
}

// NewCloseShiftUseCase crea una nueva instancia del caso de uso
func NewCloseShiftUseCase(registerService port.RegisterService, sessionCache port.SessionCache, bus *eventbus.Bus) *CloseShiftUseCase {
	return &CloseShiftUseCase{
		registerService: registerService,
		sessionCache:    sessionCache,
		bus:             bus,
	}
}

// Execute cierra la sesión indicada con el efectivo contado
func (uc *CloseShiftUseCase) Execute(ctx context.Context, userID, storeID, sessionID uuid.UUID, authToken string, req *request.CloseShiftRequest) (*response.ShiftCloseResponse, error) {
	// Validación local: el conteo tiene que ser un monto no negativo
	if req.ClosingCash.IsNegative() {
		return nil, entity.ErrInvalidCashAmount
	}

	result, err := uc.registerService.CloseShift(ctx, storeID, sessionID, req.ClosingCash, req.Notes, authToken)
	if err != nil {
		return nil, fmt.Errorf("error closing shift: %w", err)
	}

	// La sesión quedó CLOSED: el cache local deja de valer y el próximo
	// ingreso al workspace vuelve a la selección de caja
	if err := uc.sessionCache.Delete(ctx, userID); err != nil {
		log.Printf("⚠️  No se pudo invalidar el cache de sesión: %v", err)
	}

	uc.bus.Publish(eventbus.Event{
		Type:        eventbus.EventSessionClosed,
		AggregateID: sessionID.String(),
		StoreID:     storeID.String(),
		UserID:      userID.String(),
	})

	log.Printf("✅ Shift closed: session=%s closing=%s direction=%s", sessionID, result.ClosingCash, result.Direction())
	return response.NewShiftCloseResponse(result), nil
}
