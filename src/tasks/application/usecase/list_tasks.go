package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/tasks/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/tasks/domain/port"
)

// ListTasksUseCase junta los pendientes y anuncios de la tienda en una
// sola lista para el panel del workspace. Si los anuncios fallan se
// devuelven igual las tareas: el panel es informativo, no crítico.
type ListTasksUseCase struct {
	taskService port.TaskService
}

// NewListTasksUseCase crea una nueva instancia del caso de uso
func NewListTasksUseCase(taskService port.TaskService) *ListTasksUseCase {
	return &ListTasksUseCase{taskService: taskService}
}

// Execute retorna los ítems mergeados, los más nuevos primero
func (uc *ListTasksUseCase) Execute(ctx context.Context, storeID uuid.UUID, authToken string) ([]entity.Task, error) {
	tasks, err := uc.taskService.ListPendingTasks(ctx, storeID, authToken)
	if err != nil {
		return nil, fmt.Errorf("error listing pending tasks: %w", err)
	}

	announcements, err := uc.taskService.ListAnnouncements(ctx, storeID, authToken)
	if err != nil {
		log.Printf("⚠️  Announcements unavailable, showing tasks only: %v", err)
		announcements = nil
	}

	merged := make([]entity.Task, 0, len(tasks)+len(announcements))
	merged = append(merged, tasks...)
	merged = append(merged, announcements...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged, nil
}
