package request

import (
	"github.com/shopspring/decimal"
)

// CloseShiftRequest request para cerrar el turno con el conteo de efectivo
type CloseShiftRequest struct {
	ClosingCash decimal.Decimal `json:"closing_cash"`
	Notes       string          `json:"notes,omitempty"`
}
