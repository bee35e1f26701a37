package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VarianceDirection clasifica la diferencia de caja al cierre.
// UNKNOWN cuando el servidor no pudo calcular el esperado: nunca se
// muestra un cero falso.
type VarianceDirection string

const (
	VarianceOver     VarianceDirection = "OVER"
	VarianceShort    VarianceDirection = "SHORT"
	VarianceBalanced VarianceDirection = "BALANCED"
	VarianceUnknown  VarianceDirection = "UNKNOWN"
)

// ShiftCloseResult es el resultado inmutable del cierre de turno.
// ExpectedCash y Variance son nullable: el servidor puede no conocerlos.
type ShiftCloseResult struct {
	SessionID    uuid.UUID        `json:"session_id"`
	ClosingCash  decimal.Decimal  `json:"closing_cash"`
	ExpectedCash *decimal.Decimal `json:"expected_cash"`
	Variance     *decimal.Decimal `json:"variance"`
	Notes        string           `json:"notes,omitempty"`
	ClosedAt     time.Time        `json:"closed_at"`
}

// Direction deriva la dirección de la diferencia (variance = closing − expected)
func (r *ShiftCloseResult) Direction() VarianceDirection {
	if r.Variance == nil {
		return VarianceUnknown
	}
	switch {
	case r.Variance.IsPositive():
		return VarianceOver
	case r.Variance.IsNegative():
		return VarianceShort
	default:
		return VarianceBalanced
	}
}
