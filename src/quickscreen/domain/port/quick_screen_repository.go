package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/entity"
)

// QuickScreenRepository persiste la lista completa de pantallas de un
// usuario. Load retorna (nil, nil) cuando no hay nada guardado y
// entity.ErrCorruptScreens cuando el valor guardado no se puede
// deserializar; en ambos casos el caso de uso regenera los defaults.
// Save pisa la lista entera: no hay diffing incremental.
type QuickScreenRepository interface {
	Load(ctx context.Context, userID uuid.UUID) ([]entity.QuickScreen, error)
	Save(ctx context.Context, userID uuid.UUID, screens []entity.QuickScreen) error
}
