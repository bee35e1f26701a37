package subscriber

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/report/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/report/domain/port"
	saleUsecase "github.com/Maximuscb/APOS-sub001/src/sale/application/usecase"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/eventbus"
)

// JournalRecorder escucha las ventas completadas por el bus y las asienta
// en el journal local. Un fallo de asiento no corta el flujo de venta:
// se loguea y la venta sigue completada en el servidor.
type JournalRecorder struct {
	journal port.SalesJournal
}

// NewJournalRecorder crea una nueva instancia del suscriptor
func NewJournalRecorder(journal port.SalesJournal) *JournalRecorder {
	return &JournalRecorder{journal: journal}
}

// SubscribeToBus registra el handler de ventas completadas
func (r *JournalRecorder) SubscribeToBus(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.EventSaleCompleted, r.record)
}

func (r *JournalRecorder) record(event eventbus.Event) {
	payload, ok := event.Payload.(saleUsecase.SaleCompletedPayload)
	if !ok || payload.Sale == nil || payload.Summary == nil {
		log.Printf("⚠️  Sale completed event without usable payload, skipping journal entry")
		return
	}

	storeID, err := uuid.Parse(event.StoreID)
	if err != nil {
		log.Printf("⚠️  Sale completed event with invalid store id %q", event.StoreID)
		return
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		log.Printf("⚠️  Sale completed event with invalid user id %q", event.UserID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := entity.JournalEntry{
		ID:             uuid.New(),
		SaleID:         payload.Sale.ID,
		DocumentNumber: payload.Sale.DocumentNumber,
		StoreID:        storeID,
		UserID:         userID,
		ItemCount:      payload.Sale.ItemCount(),
		Total:          payload.Summary.Due,
		Paid:           payload.Summary.Paid,
		ChangeDue:      payload.Summary.ChangeDue,
		CompletedAt:    event.OccurredAt,
	}

	if err := r.journal.Record(ctx, entry); err != nil {
		log.Printf("❌ Could not record sale %s in local journal: %v", payload.Sale.ID, err)
		return
	}
	log.Printf("📒 Sale journaled: sale=%s doc=%s total=%s", entry.SaleID, entry.DocumentNumber, entry.Total)
}
