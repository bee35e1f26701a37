package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpenShiftRequest request para abrir un turno sobre una caja
type OpenShiftRequest struct {
	RegisterID  uuid.UUID       `json:"register_id"`
	OpeningCash decimal.Decimal `json:"opening_cash"`
}
