package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse reporte diario del terminal a partir del journal local
type DailyReportResponse struct {
	Date               string          `json:"date"` // YYYY-MM-DD
	SalesCount         int             `json:"sales_count"`
	ItemsSold          int             `json:"items_sold"`
	GrossTotal         decimal.Decimal `json:"gross_total"`
	PaidTotal          decimal.Decimal `json:"paid_total"`
	ChangeTotal        decimal.Decimal `json:"change_total"`
	FirstTransactionAt *time.Time      `json:"first_transaction_at,omitempty"`
	LastTransactionAt  *time.Time      `json:"last_transaction_at,omitempty"`
}
