package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/tasks/domain/entity"
)

// TaskService expone los pendientes y anuncios de la tienda en el
// back-office
type TaskService interface {
	ListPendingTasks(ctx context.Context, storeID uuid.UUID, authToken string) ([]entity.Task, error)
	ListAnnouncements(ctx context.Context, storeID uuid.UUID, authToken string) ([]entity.Task, error)
}
