package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
)

// SessionCache persiste localmente la última sesión abierta conocida de un
// usuario, para saltear la selección de caja al re-entrar al workspace.
// Get retorna (nil, nil) cuando no hay entrada.
type SessionCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.CachedSession, error)
	Put(ctx context.Context, userID uuid.UUID, session entity.CachedSession) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
