package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskKind distingue tareas operativas de anuncios informativos
type TaskKind string

const (
	KindTask         TaskKind = "TASK"
	KindAnnouncement TaskKind = "ANNOUNCEMENT"
)

// Task es un ítem pendiente de la tienda que se muestra en el workspace.
// Es solo lectura desde acá: se completa o administra en el back-office.
type Task struct {
	ID        uuid.UUID  `json:"id"`
	Kind      TaskKind   `json:"kind"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
