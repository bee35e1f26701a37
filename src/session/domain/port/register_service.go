package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
)

// RegisterService define las operaciones del back-office sobre cajas y
// turnos. El servidor es la única fuente de verdad: este cliente no hace
// ningún locking propio, solo traduce el 409 de la carrera de apertura a
// entity.ErrRegisterInUse.
type RegisterService interface {
	// ListRegisters retorna las cajas de la tienda con su sesión abierta
	// anidada (si la hay)
	ListRegisters(ctx context.Context, storeID uuid.UUID, authToken string) ([]entity.Register, error)

	// OpenShift abre un turno sobre una caja con el efectivo inicial.
	// Retorna entity.ErrRegisterInUse si otro usuario ganó la carrera
	// entre el listado y la apertura.
	OpenShift(ctx context.Context, storeID, registerID, userID uuid.UUID, openingCash decimal.Decimal, authToken string) (*entity.RegisterSession, error)

	// CloseShift cierra la sesión con el conteo de efectivo. El esperado
	// y la diferencia los calcula el servidor y pueden venir en null.
	CloseShift(ctx context.Context, storeID, sessionID uuid.UUID, closingCash decimal.Decimal, notes, authToken string) (*entity.ShiftCloseResult, error)
}
