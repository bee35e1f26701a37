package request

import (
	"github.com/google/uuid"
)

// AddButtonRequest request para agregar un botón a una pantalla
type AddButtonRequest struct {
	ScreenID  uuid.UUID `json:"screen_id"`
	ProductID uuid.UUID `json:"product_id"`
}

// RemoveButtonRequest request para sacar un botón de una pantalla
type RemoveButtonRequest struct {
	ScreenID  uuid.UUID `json:"screen_id"`
	ProductID uuid.UUID `json:"product_id"`
}

// ReorderButtonsRequest request con el nuevo orden completo de la pantalla
type ReorderButtonsRequest struct {
	ScreenID   uuid.UUID   `json:"screen_id"`
	ProductIDs []uuid.UUID `json:"product_ids"`
}

// RenameScreenRequest request para renombrar una pantalla
type RenameScreenRequest struct {
	ScreenID uuid.UUID `json:"screen_id"`
	Name     string    `json:"name"`
}
