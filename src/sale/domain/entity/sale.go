package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus estado de una venta (el servidor es autoritativo)
type SaleStatus string

const (
	SaleStatusDraft  SaleStatus = "DRAFT"
	SaleStatusPosted SaleStatus = "POSTED"
)

// Sale es el carrito en curso: una venta DRAFT atada a la sesión de caja.
// Al postearse se abre inmediatamente un nuevo draft, así el workspace
// nunca queda sin carrito actual.
type Sale struct {
	ID             uuid.UUID  `json:"id"`
	DocumentNumber string     `json:"document_number"`
	Status         SaleStatus `json:"status"`
	StoreID        uuid.UUID  `json:"store_id"`
	SessionID      uuid.UUID  `json:"session_id"`
	RegisterID     *uuid.UUID `json:"register_id,omitempty"`
	Lines          []SaleLine `json:"lines"`
}

// ItemCount suma las cantidades de todas las líneas (reducción pura,
// se recalcula después de cada merge)
func (s *Sale) ItemCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

// Subtotal suma los totales de línea (reducción pura)
func (s *Sale) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range s.Lines {
		subtotal = subtotal.Add(line.LineTotal)
	}
	return subtotal
}
