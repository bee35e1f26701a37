package request

import (
	"github.com/shopspring/decimal"

	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
)

// ApplyPaymentRequest request para aplicar un pago contra la venta
type ApplyPaymentRequest struct {
	TenderType entity.TenderType `json:"tender_type"`
	Amount     decimal.Decimal   `json:"amount"`
	Reference  string            `json:"reference,omitempty"`
}
