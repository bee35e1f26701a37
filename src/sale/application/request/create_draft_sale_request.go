package request

import (
	"github.com/google/uuid"
)

// CreateDraftSaleRequest request para abrir el carrito de la sesión
type CreateDraftSaleRequest struct {
	SessionID  uuid.UUID  `json:"session_id"`
	RegisterID *uuid.UUID `json:"register_id,omitempty"`
}
