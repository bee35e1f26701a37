package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Maximuscb/APOS-sub001/src/report/application/response"
)

// DailyReportUseCase agrega el journal local para una fecha.
// El rango es [from, to): >= from AND < to, sin DATE(completed_at), para
// poder usar un índice si la tabla crece.
type DailyReportUseCase struct {
	db *sql.DB
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(db *sql.DB) *DailyReportUseCase {
	return &DailyReportUseCase{
		db: db,
	}
}

// Execute genera el reporte diario para una fecha específica
func (uc *DailyReportUseCase) Execute(ctx context.Context, storeID uuid.UUID, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	query := `
		SELECT
			COUNT(*) as sales_count,
			COALESCE(SUM(item_count), 0) as items_sold,
			COALESCE(SUM(total), 0) as gross_total,
			COALESCE(SUM(paid), 0) as paid_total,
			COALESCE(SUM(change_due), 0) as change_total,
			MIN(completed_at) as first_sale,
			MAX(completed_at) as last_sale
		FROM sales_journal
		WHERE store_id = ?
			AND completed_at >= ?
			AND completed_at < ?
	`

	var salesCount, itemsSold int
	var grossTotal, paidTotal, changeTotal decimal.Decimal
	var firstSale, lastSale sql.NullString

	err = uc.db.QueryRowContext(ctx, query, storeID.String(), from, to).Scan(
		&salesCount,
		&itemsSold,
		&grossTotal,
		&paidTotal,
		&changeTotal,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sales_journal: %w", err)
	}

	resp := &response.DailyReportResponse{
		Date:        date,
		SalesCount:  salesCount,
		ItemsSold:   itemsSold,
		GrossTotal:  grossTotal,
		PaidTotal:   paidTotal,
		ChangeTotal: changeTotal,
	}

	// Los timestamps van solo si hubo ventas en el rango
	if resp.FirstTransactionAt, err = parseJournalTime(firstSale); err != nil {
		return nil, err
	}
	if resp.LastTransactionAt, err = parseJournalTime(lastSale); err != nil {
		return nil, err
	}

	return resp, nil
}

// MIN/MAX sobre completed_at son expresiones agregadas: la columna pierde
// su decltype y go-sqlite3 devuelve el valor guardado como texto en vez de
// time.Time, así que se parsea a mano con los formatos que el driver graba.
var journalTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseJournalTime(value sql.NullString) (*time.Time, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	for _, layout := range journalTimeLayouts {
		if ts, err := time.Parse(layout, value.String); err == nil {
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("unrecognized timestamp in sales_journal: %q", value.String)
}
