package port

import (
	"context"

	"github.com/Maximuscb/APOS-sub001/src/report/domain/entity"
)

// SalesJournal persiste las ventas completadas del terminal
type SalesJournal interface {
	Record(ctx context.Context, entry entity.JournalEntry) error
}
