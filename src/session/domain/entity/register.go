package entity

import (
	"github.com/google/uuid"
)

// SessionStatus estado de una sesión de caja (el servidor es autoritativo)
type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "OPEN"
	SessionStatusClosed SessionStatus = "CLOSED"
)

// Availability disponibilidad de una caja para el usuario que consulta
type Availability string

const (
	AvailabilityAvailable     Availability = "AVAILABLE"
	AvailabilityOwnedByCaller Availability = "OWNED_BY_CALLER"
	AvailabilityOwnedByOther  Availability = "OWNED_BY_OTHER"
)

// RegisterSession representa el turno abierto de un usuario sobre una caja.
// Invariante (garantizada por el back-office): a lo sumo una sesión OPEN por
// caja, y un usuario tiene a lo sumo una sesión OPEN por tienda.
type RegisterSession struct {
	ID             uuid.UUID     `json:"id"`
	RegisterID     uuid.UUID     `json:"register_id"`
	RegisterNumber int           `json:"register_number"`
	UserID         uuid.UUID     `json:"user_id"`
	StoreID        uuid.UUID     `json:"store_id"`
	Status         SessionStatus `json:"status"`
}

// Register representa una caja física de la tienda
type Register struct {
	ID             uuid.UUID        `json:"id"`
	Number         int              `json:"number"`
	Name           string           `json:"name"`
	CurrentSession *RegisterSession `json:"current_session,omitempty"`
}

// AvailabilityFor clasifica la caja según quién la tiene tomada
func (r *Register) AvailabilityFor(userID uuid.UUID) Availability {
	if r.CurrentSession == nil || r.CurrentSession.Status != SessionStatusOpen {
		return AvailabilityAvailable
	}
	if r.CurrentSession.UserID == userID {
		return AvailabilityOwnedByCaller
	}
	return AvailabilityOwnedByOther
}

// CachedSession es la identidad de sesión persistida localmente, con scope
// de tienda: si la tienda activa cambia, la entrada se descarta
type CachedSession struct {
	SessionID      uuid.UUID `json:"session_id"`
	RegisterID     uuid.UUID `json:"register_id"`
	RegisterNumber int       `json:"register_number"`
	StoreID        uuid.UUID `json:"store_id"`
}
