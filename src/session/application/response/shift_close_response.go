package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
)

// ShiftCloseResponse resultado del cierre de turno listo para mostrar.
// ExpectedCash/Variance en null se muestran como desconocidos, nunca $0.
type ShiftCloseResponse struct {
	SessionID    uuid.UUID                `json:"session_id"`
	ClosingCash  decimal.Decimal          `json:"closing_cash"`
	ExpectedCash *decimal.Decimal         `json:"expected_cash"`
	Variance     *decimal.Decimal         `json:"variance"`
	Direction    entity.VarianceDirection `json:"direction"`
	Notes        string                   `json:"notes,omitempty"`
	ClosedAt     time.Time                `json:"closed_at"`
}

// NewShiftCloseResponse arma la vista a partir del resultado del cierre
func NewShiftCloseResponse(result *entity.ShiftCloseResult) *ShiftCloseResponse {
	return &ShiftCloseResponse{
		SessionID:    result.SessionID,
		ClosingCash:  result.ClosingCash,
		ExpectedCash: result.ExpectedCash,
		Variance:     result.Variance,
		Direction:    result.Direction(),
		Notes:        result.Notes,
		ClosedAt:     result.ClosedAt,
	}
}
