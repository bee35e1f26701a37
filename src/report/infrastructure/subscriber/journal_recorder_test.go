package subscriber

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maximuscb/APOS-sub001/src/report/domain/entity"
	saleUsecase "github.com/Maximuscb/APOS-sub001/src/sale/application/usecase"
	saleEntity "github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/eventbus"
)

type fakeJournal struct {
	entries []entity.JournalEntry
}

func (f *fakeJournal) Record(_ context.Context, entry entity.JournalEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func TestJournalRecorderRecordsCompletedSale(t *testing.T) {
	journal := &fakeJournal{}
	bus := eventbus.New()
	NewJournalRecorder(journal).SubscribeToBus(bus)

	saleID := uuid.New()
	storeID := uuid.New()
	userID := uuid.New()

	bus.Publish(eventbus.Event{
		Type:        eventbus.EventSaleCompleted,
		AggregateID: saleID.String(),
		StoreID:     storeID.String(),
		UserID:      userID.String(),
		Payload: saleUsecase.SaleCompletedPayload{
			Sale: &saleEntity.Sale{
				ID:             saleID,
				DocumentNumber: "V-0042",
				Status:         saleEntity.SaleStatusPosted,
				Lines: []saleEntity.SaleLine{
					{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2, LineTotal: decimal.RequireFromString("10.00")},
				},
			},
			Summary: &saleEntity.PaymentSummary{
				Due:       decimal.RequireFromString("10.00"),
				Paid:      decimal.RequireFromString("10.00"),
				Remaining: decimal.Zero,
				ChangeDue: decimal.Zero,
				Status:    saleEntity.PaymentStatusPaid,
			},
		},
	})

	require.Len(t, journal.entries, 1)
	entry := journal.entries[0]
	assert.Equal(t, saleID, entry.SaleID)
	assert.Equal(t, "V-0042", entry.DocumentNumber)
	assert.Equal(t, storeID, entry.StoreID)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, 2, entry.ItemCount)
	assert.True(t, entry.Total.Equal(decimal.RequireFromString("10.00")))
	assert.False(t, entry.CompletedAt.IsZero())
}

func TestJournalRecorderIgnoresMalformedEvents(t *testing.T) {
	journal := &fakeJournal{}
	bus := eventbus.New()
	NewJournalRecorder(journal).SubscribeToBus(bus)

	// Sin payload utilizable
	bus.Publish(eventbus.Event{
		Type:    eventbus.EventSaleCompleted,
		StoreID: uuid.NewString(),
		UserID:  uuid.NewString(),
	})

	// Store id inválido
	bus.Publish(eventbus.Event{
		Type:    eventbus.EventSaleCompleted,
		StoreID: "not-a-uuid",
		UserID:  uuid.NewString(),
		Payload: saleUsecase.SaleCompletedPayload{
			Sale:    &saleEntity.Sale{ID: uuid.New()},
			Summary: &saleEntity.PaymentSummary{},
		},
	})

	assert.Empty(t, journal.entries)
}
