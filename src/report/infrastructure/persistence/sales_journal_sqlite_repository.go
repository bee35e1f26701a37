package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Maximuscb/APOS-sub001/src/report/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/report/domain/port"
)

// SalesJournalSqliteRepository implementa el journal sobre el SQLite
// local. Solo-agregado: nunca se actualiza ni borra una fila.
type SalesJournalSqliteRepository struct {
	db *sql.DB
}

// NewSalesJournalSqliteRepository crea el repositorio y su tabla si no existe
func NewSalesJournalSqliteRepository(db *sql.DB) (port.SalesJournal, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS sales_journal (
			id              TEXT PRIMARY KEY,
			sale_id         TEXT NOT NULL,
			document_number TEXT NOT NULL,
			store_id        TEXT NOT NULL,
			user_id         TEXT NOT NULL,
			item_count      INTEGER NOT NULL,
			total           TEXT NOT NULL,
			paid            TEXT NOT NULL,
			change_due      TEXT NOT NULL,
			completed_at    TIMESTAMP NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("error creating sales_journal table: %w", err)
	}

	return &SalesJournalSqliteRepository{db: db}, nil
}

// Record agrega la venta completada al journal
func (r *SalesJournalSqliteRepository) Record(ctx context.Context, entry entity.JournalEntry) error {
	query := `
		INSERT INTO sales_journal
			(id, sale_id, document_number, store_id, user_id, item_count, total, paid, change_due, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID.String(),
		entry.SaleID.String(),
		entry.DocumentNumber,
		entry.StoreID.String(),
		entry.UserID.String(),
		entry.ItemCount,
		entry.Total.String(),
		entry.Paid.String(),
		entry.ChangeDue.String(),
		entry.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("error recording journal entry: %w", err)
	}
	return nil
}
