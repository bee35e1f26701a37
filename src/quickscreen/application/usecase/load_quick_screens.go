package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/quickscreen/application/response"
	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/port"
)

// LoadQuickScreensUseCase carga las pantallas del usuario. Tres estados y
// nada más: sin valor guardado → defaults; valor válido → filtrado contra
// el catálogo; valor corrupto → defaults. Nunca un error por el valor
// guardado.
type LoadQuickScreensUseCase struct {
	catalogService port.CatalogService
	repository     port.QuickScreenRepository
}

// NewLoadQuickScreensUseCase crea una nueva instancia del caso de uso
func NewLoadQuickScreensUseCase(catalogService port.CatalogService, repository port.QuickScreenRepository) *LoadQuickScreensUseCase {
	return &LoadQuickScreensUseCase{
		catalogService: catalogService,
		repository:     repository,
	}
}

// Execute retorna las pantallas listas para renderizar
func (uc *LoadQuickScreensUseCase) Execute(ctx context.Context, userID, storeID uuid.UUID, authToken string) (*response.QuickScreensResponse, error) {
	screens, _, err := resolveScreens(ctx, uc.catalogService, uc.repository, userID, storeID, authToken)
	if err != nil {
		return nil, err
	}
	return &response.QuickScreensResponse{Screens: screens}, nil
}

// resolveScreens es el camino de carga común a todos los casos de uso del
// módulo: catálogo + valor guardado → lista saneada y re-persistida si
// hizo falta limpiar o regenerar. Retorna también el catálogo para que
// las mutaciones validen altas contra él.
func resolveScreens(ctx context.Context, catalogService port.CatalogService, repository port.QuickScreenRepository, userID, storeID uuid.UUID, authToken string) ([]entity.QuickScreen, []uuid.UUID, error) {
	catalog, err := catalogService.ListProductIDs(ctx, storeID, authToken)
	if err != nil {
		return nil, nil, fmt.Errorf("error listing catalog products: %w", err)
	}

	stored, err := repository.Load(ctx, userID)
	if err != nil {
		// Valor corrupto (o ilegible): se regenera, no se falla
		log.Printf("⚠️  Stored quick screens unusable for user %s, regenerating defaults: %v", userID, err)
		stored = nil
	}

	if stored == nil {
		screens := entity.DefaultPartition(catalog)
		if err := repository.Save(ctx, userID, screens); err != nil {
			return nil, nil, fmt.Errorf("error saving default quick screens: %w", err)
		}
		log.Printf("🧩 Default quick screens generated: user=%s screens=%d", userID, len(screens))
		return screens, catalog, nil
	}

	screens, dropped := entity.FilterByCatalog(stored, catalog)
	if dropped {
		// Referencias colgantes: se limpian y la lista limpia se persiste
		if err := repository.Save(ctx, userID, screens); err != nil {
			return nil, nil, fmt.Errorf("error saving filtered quick screens: %w", err)
		}
		log.Printf("🧹 Dangling product references dropped from quick screens: user=%s", userID)
	}
	return screens, catalog, nil
}

// catalogSet arma el set de ids para validar altas de botones
func catalogSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
