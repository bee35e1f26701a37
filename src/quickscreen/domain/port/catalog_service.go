package port

import (
	"context"

	"github.com/google/uuid"
)

// CatalogService expone los ids de producto vendibles de la tienda. Se usa
// para generar los defaults y para filtrar referencias colgantes al cargar
// las pantallas.
type CatalogService interface {
	ListProductIDs(ctx context.Context, storeID uuid.UUID, authToken string) ([]uuid.UUID, error)
}
