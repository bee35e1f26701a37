package request

import (
	"github.com/google/uuid"
)

// AddItemRequest request para agregar un producto al carrito.
// Quantity en 0 se interpreta como 1 (el click simple del botón).
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}
