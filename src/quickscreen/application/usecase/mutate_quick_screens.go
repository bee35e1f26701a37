package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/quickscreen/application/request"
	"github.com/Maximuscb/APOS-sub001/src/quickscreen/application/response"
	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/port"
)

// Las mutaciones comparten la misma disciplina: cargar la lista saneada,
// aplicar el cambio en memoria y re-guardar la lista ENTERA. No hay
// diffing incremental; el guardado completo es la unidad de persistencia.

// AddButtonUseCase agrega un botón de producto a una pantalla
type AddButtonUseCase struct {
	catalogService port.CatalogService
	repository     port.QuickScreenRepository
}

// NewAddButtonUseCase crea una nueva instancia del caso de uso
func NewAddButtonUseCase(catalogService port.CatalogService, repository port.QuickScreenRepository) *AddButtonUseCase {
	return &AddButtonUseCase{catalogService: catalogService, repository: repository}
}

// Execute agrega el botón y persiste la lista completa
func (uc *AddButtonUseCase) Execute(ctx context.Context, userID, storeID uuid.UUID, authToken string, req *request.AddButtonRequest) (*response.QuickScreensResponse, error) {
	screens, catalog, err := resolveScreens(ctx, uc.catalogService, uc.repository, userID, storeID, authToken)
	if err != nil {
		return nil, err
	}

	// Un botón solo puede apuntar a un producto vigente del catálogo
	if _, ok := catalogSet(catalog)[req.ProductID]; !ok {
		return nil, entity.ErrProductNotInCatalog
	}

	screen, err := entity.FindScreen(screens, req.ScreenID)
	if err != nil {
		return nil, err
	}
	screen.AddProduct(req.ProductID)

	if err := uc.repository.Save(ctx, userID, screens); err != nil {
		return nil, fmt.Errorf("error saving quick screens: %w", err)
	}
	log.Printf("🔘 Button added: user=%s screen=%s product=%s", userID, req.ScreenID, req.ProductID)
	return &response.QuickScreensResponse{Screens: screens}, nil
}

// RemoveButtonUseCase saca un botón de una pantalla
type RemoveButtonUseCase struct {
	catalogService port.CatalogService
	repository     port.QuickScreenRepository
}

// NewRemoveButtonUseCase crea una nueva instancia del caso de uso
func NewRemoveButtonUseCase(catalogService port.CatalogService, repository port.QuickScreenRepository) *RemoveButtonUseCase {
	return &RemoveButtonUseCase{catalogService: catalogService, repository: repository}
}

// Execute saca el botón y persiste la lista completa
func (uc *RemoveButtonUseCase) Execute(ctx context.Context, userID, storeID uuid.UUID, authToken string, req *request.RemoveButtonRequest) (*response.QuickScreensResponse, error) {
	screens, _, err := resolveScreens(ctx, uc.catalogService, uc.repository, userID, storeID, authToken)
	if err != nil {
		return nil, err
	}

	screen, err := entity.FindScreen(screens, req.ScreenID)
	if err != nil {
		return nil, err
	}
	screen.RemoveProduct(req.ProductID)

	if err := uc.repository.Save(ctx, userID, screens); err != nil {
		return nil, fmt.Errorf("error saving quick screens: %w", err)
	}
	return &response.QuickScreensResponse{Screens: screens}, nil
}

// ReorderButtonsUseCase reordena los botones de una pantalla (drag & drop)
type ReorderButtonsUseCase struct {
	catalogService port.CatalogService
	repository     port.QuickScreenRepository
}

// NewReorderButtonsUseCase crea una nueva instancia del caso de uso
func NewReorderButtonsUseCase(catalogService port.CatalogService, repository port.QuickScreenRepository) *ReorderButtonsUseCase {
	return &ReorderButtonsUseCase{catalogService: catalogService, repository: repository}
}

// Execute aplica el nuevo orden y persiste la lista completa
func (uc *ReorderButtonsUseCase) Execute(ctx context.Context, userID, storeID uuid.UUID, authToken string, req *request.ReorderButtonsRequest) (*response.QuickScreensResponse, error) {
	screens, _, err := resolveScreens(ctx, uc.catalogService, uc.repository, userID, storeID, authToken)
	if err != nil {
		return nil, err
	}

	screen, err := entity.FindScreen(screens, req.ScreenID)
	if err != nil {
		return nil, err
	}
	if err := screen.Reorder(req.ProductIDs); err != nil {
		return nil, err
	}

	if err := uc.repository.Save(ctx, userID, screens); err != nil {
		return nil, fmt.Errorf("error saving quick screens: %w", err)
	}
	return &response.QuickScreensResponse{Screens: screens}, nil
}

// RenameScreenUseCase renombra una pantalla (prompt inline en la UI)
type RenameScreenUseCase struct {
	catalogService port.CatalogService
	repository     port.QuickScreenRepository
}

// NewRenameScreenUseCase crea una nueva instancia del caso de uso
func NewRenameScreenUseCase(catalogService port.CatalogService, repository port.QuickScreenRepository) *RenameScreenUseCase {
	return &RenameScreenUseCase{catalogService: catalogService, repository: repository}
}

// Execute renombra la pantalla y persiste la lista completa
func (uc *RenameScreenUseCase) Execute(ctx context.Context, userID, storeID uuid.UUID, authToken string, req *request.RenameScreenRequest) (*response.QuickScreensResponse, error) {
	screens, _, err := resolveScreens(ctx, uc.catalogService, uc.repository, userID, storeID, authToken)
	if err != nil {
		return nil, err
	}

	screen, err := entity.FindScreen(screens, req.ScreenID)
	if err != nil {
		return nil, err
	}
	if err := screen.Rename(strings.TrimSpace(req.Name)); err != nil {
		return nil, err
	}

	if err := uc.repository.Save(ctx, userID, screens); err != nil {
		return nil, fmt.Errorf("error saving quick screens: %w", err)
	}
	return &response.QuickScreensResponse{Screens: screens}, nil
}
