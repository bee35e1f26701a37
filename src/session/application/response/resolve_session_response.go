package response

import (
	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
)

// Resoluciones posibles al entrar al workspace
const (
	ResolutionOwned             = "owned"
	ResolutionSelectionRequired = "selection_required"
)

// RegisterView una caja anotada con su disponibilidad para el usuario
type RegisterView struct {
	RegisterID   uuid.UUID           `json:"register_id"`
	Number       int                 `json:"number"`
	Name         string              `json:"name"`
	Availability entity.Availability `json:"availability"`
	Selectable   bool                `json:"selectable"`
	OwnedBy      *uuid.UUID          `json:"owned_by,omitempty"`
}

// ResolveSessionResponse resultado de resolver la sesión al entrar al
// workspace: o el usuario ya es dueño de una sesión abierta, o tiene que
// elegir caja
type ResolveSessionResponse struct {
	Resolution string                  `json:"resolution"`
	Session    *entity.RegisterSession `json:"session,omitempty"`
	Registers  []RegisterView          `json:"registers,omitempty"`
}
