package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleLine una línea de la venta. La identidad (ID) la asigna el servidor
// y la cantidad/total vienen ya acumulados: el cliente nunca hace la
// aritmética, solo mergea por identidad.
type SaleLine struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}
