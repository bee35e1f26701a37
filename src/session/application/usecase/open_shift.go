package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/session/application/request"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/port"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/eventbus"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/metrics"
)

// OpenShiftUseCase abre un turno sobre una caja. La carrera entre dos
// terminales por la misma caja la resuelve el back-office con un
// check-and-set atómico; acá el conflicto se trata como un error
// recuperable más.
type OpenShiftUseCase struct {
	registerService port.RegisterService
	sessionCache    port.SessionCache
	bus             *eventbus.Bus
}

// NewOpenShiftUseCase crea una nueva instancia del caso de uso
func NewOpenShiftUseCase(registerService port.RegisterService, sessionCache port.SessionCache, bus *eventbus.Bus) *OpenShiftUseCase {
	return &OpenShiftUseCase{
		registerService: registerService,
		sessionCache:    sessionCache,
		bus:             bus,
	}
}

// Execute abre el turno con el efectivo inicial declarado
func (uc *OpenShiftUseCase) Execute(ctx context.Context, userID, storeID uuid.UUID, authToken string, req *request.OpenShiftRequest) (*entity.RegisterSession, error) {
	// Validaciones locales, antes de cualquier llamada
	if req.RegisterID == uuid.Nil {
		return nil, entity.ErrRegisterIDRequired
	}
	if req.OpeningCash.IsNegative() {
		return nil, entity.ErrInvalidCashAmount
	}

	session, err := uc.registerService.OpenShift(ctx, storeID, req.RegisterID, userID, req.OpeningCash, authToken)
	if err != nil {
		if errors.Is(err, entity.ErrRegisterInUse) {
			// Otro usuario ganó la carrera entre el listado y la apertura
			metrics.RegisterConflicts.Inc()
			log.Printf("⚠️  Register %s already claimed, user %s must re-select", req.RegisterID, userID)
			return nil, err
		}
		return nil, fmt.Errorf("error opening shift: %w", err)
	}

	// Cachear la identidad para saltear la selección al re-entrar
	if err := uc.sessionCache.Put(ctx, userID, entity.CachedSession{
		SessionID:      session.ID,
		RegisterID:     session.RegisterID,
		RegisterNumber: session.RegisterNumber,
		StoreID:        storeID,
	}); err != nil {
		log.Printf("⚠️  No se pudo cachear la sesión: %v", err)
	}

	uc.bus.Publish(eventbus.Event{
		Type:        eventbus.EventSessionOpened,
		AggregateID: session.ID.String(),
		StoreID:     storeID.String(),
		UserID:      userID.String(),
	})

	log.Printf("✅ Shift opened: session=%s register=%d user=%s", session.ID, session.RegisterNumber, userID)
	return session, nil
}
