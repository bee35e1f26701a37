package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalEntry es el registro local de una venta completada. El journal
// es un libro de solo-agregado del terminal: alimenta el reporte diario
// sin depender del back-office.
type JournalEntry struct {
	ID             uuid.UUID       `json:"id"`
	SaleID         uuid.UUID       `json:"sale_id"`
	DocumentNumber string          `json:"document_number"`
	StoreID        uuid.UUID       `json:"store_id"`
	UserID         uuid.UUID       `json:"user_id"`
	ItemCount      int             `json:"item_count"`
	Total          decimal.Decimal `json:"total"`
	Paid           decimal.Decimal `json:"paid"`
	ChangeDue      decimal.Decimal `json:"change_due"`
	CompletedAt    time.Time       `json:"completed_at"`
}
