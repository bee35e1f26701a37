package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TenderType medio de pago aplicado contra una venta
type TenderType string

const (
	TenderCash        TenderType = "CASH"
	TenderCard        TenderType = "CARD"
	TenderCheck       TenderType = "CHECK"
	TenderGiftCard    TenderType = "GIFT_CARD"
	TenderStoreCredit TenderType = "STORE_CREDIT"
)

// Payment un pago aplicado contra una venta
type Payment struct {
	ID         uuid.UUID       `json:"id"`
	SaleID     uuid.UUID       `json:"sale_id"`
	TenderType TenderType      `json:"tender_type"`
	Amount     decimal.Decimal `json:"amount"`
	Reference  string          `json:"reference,omitempty"`
}

// PaymentStatus estado de cobro de la venta
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// PaymentSummary vista derivada de los pagos de una venta, calculada por
// el servidor: remaining = due − paid. remaining ≤ 0 es la única
// condición que habilita completar la venta.
type PaymentSummary struct {
	Due       decimal.Decimal `json:"due"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
	ChangeDue decimal.Decimal `json:"change_due"`
	Status    PaymentStatus   `json:"status"`
}

// IsSettled indica si la venta puede completarse (remaining ≤ 0)
func (s *PaymentSummary) IsSettled() bool {
	return s.Remaining.LessThanOrEqual(decimal.Zero)
}
