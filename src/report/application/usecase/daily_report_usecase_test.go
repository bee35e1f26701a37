package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maximuscb/APOS-sub001/src/report/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/report/domain/port"
	"github.com/Maximuscb/APOS-sub001/src/report/infrastructure/persistence"
)

func setupJournal(t *testing.T) (*sql.DB, port.SalesJournal) {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	journal, err := persistence.NewSalesJournalSqliteRepository(db)
	require.NoError(t, err)
	return db, journal
}

func entryAt(storeID uuid.UUID, total, paid, change string, items int, completedAt time.Time) entity.JournalEntry {
	return entity.JournalEntry{
		ID:             uuid.New(),
		SaleID:         uuid.New(),
		DocumentNumber: "V-" + uuid.NewString()[:6],
		StoreID:        storeID,
		UserID:         uuid.New(),
		ItemCount:      items,
		Total:          decimal.RequireFromString(total),
		Paid:           decimal.RequireFromString(paid),
		ChangeDue:      decimal.RequireFromString(change),
		CompletedAt:    completedAt,
	}
}

func TestDailyReportAggregatesJournal(t *testing.T) {
	db, journal := setupJournal(t)
	storeID := uuid.New()
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	morning := day.Add(9 * time.Hour)
	evening := day.Add(19 * time.Hour)
	require.NoError(t, journal.Record(context.Background(), entryAt(storeID, "10.00", "10.00", "0", 2, morning)))
	require.NoError(t, journal.Record(context.Background(), entryAt(storeID, "25.50", "30.00", "4.50", 3, evening)))

	// Venta de otra tienda y venta del día siguiente: fuera del reporte
	require.NoError(t, journal.Record(context.Background(), entryAt(uuid.New(), "99.00", "99.00", "0", 1, morning)))
	require.NoError(t, journal.Record(context.Background(), entryAt(storeID, "7.00", "7.00", "0", 1, day.AddDate(0, 0, 1))))

	uc := NewDailyReportUseCase(db)
	report, err := uc.Execute(context.Background(), storeID, "2026-08-29")

	require.NoError(t, err)
	assert.Equal(t, 2, report.SalesCount)
	assert.Equal(t, 5, report.ItemsSold)
	assert.True(t, report.GrossTotal.Equal(decimal.RequireFromString("35.50")), "gross was %s", report.GrossTotal)
	assert.True(t, report.PaidTotal.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, report.ChangeTotal.Equal(decimal.RequireFromString("4.50")))
	require.NotNil(t, report.FirstTransactionAt)
	require.NotNil(t, report.LastTransactionAt)
	assert.True(t, report.FirstTransactionAt.Equal(morning))
	assert.True(t, report.LastTransactionAt.Equal(evening))
}

func TestDailyReportScansAggregatedTimestamps(t *testing.T) {
	db, journal := setupJournal(t)
	storeID := uuid.New()

	// MIN/MAX llegan del driver como texto, con y sin fracción de segundo
	first := time.Date(2026, 8, 29, 8, 15, 0, 123456789, time.UTC)
	last := time.Date(2026, 8, 29, 21, 45, 30, 0, time.UTC)
	require.NoError(t, journal.Record(context.Background(), entryAt(storeID, "5.00", "5.00", "0", 1, first)))
	require.NoError(t, journal.Record(context.Background(), entryAt(storeID, "8.00", "8.00", "0", 1, last)))

	uc := NewDailyReportUseCase(db)
	report, err := uc.Execute(context.Background(), storeID, "2026-08-29")

	require.NoError(t, err)
	require.NotNil(t, report.FirstTransactionAt)
	require.NotNil(t, report.LastTransactionAt)
	assert.True(t, report.FirstTransactionAt.Equal(first), "first was %s", report.FirstTransactionAt)
	assert.True(t, report.LastTransactionAt.Equal(last), "last was %s", report.LastTransactionAt)
}

func TestDailyReportEmptyDay(t *testing.T) {
	db, _ := setupJournal(t)

	uc := NewDailyReportUseCase(db)
	report, err := uc.Execute(context.Background(), uuid.New(), "2026-08-29")

	require.NoError(t, err)
	assert.Equal(t, 0, report.SalesCount)
	assert.True(t, report.GrossTotal.IsZero())
	assert.Nil(t, report.FirstTransactionAt)
	assert.Nil(t, report.LastTransactionAt)
}

func TestDailyReportRejectsBadDate(t *testing.T) {
	db, _ := setupJournal(t)

	uc := NewDailyReportUseCase(db)
	_, err := uc.Execute(context.Background(), uuid.New(), "29/08/2026")

	assert.ErrorContains(t, err, "invalid date format")
}
