package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultPageSize cantidad de botones por pantalla al generar los defaults
const DefaultPageSize = 16

// QuickScreen es una grilla nombrada de accesos directos a productos,
// varias por usuario. Las referencias a productos que ya no están en el
// catálogo se filtran al cargar; las pantallas se vacían pero nunca se
// eliminan desde acá.
type QuickScreen struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	ProductIDs []uuid.UUID `json:"product_ids"`
}

// DefaultPartition genera las pantallas iniciales particionando el
// catálogo en páginas de tamaño fijo. Con catálogo vacío devuelve una
// única pantalla vacía para que el usuario tenga dónde agregar.
func DefaultPartition(catalogProductIDs []uuid.UUID) []QuickScreen {
	if len(catalogProductIDs) == 0 {
		return []QuickScreen{{
			ID:         uuid.New(),
			Name:       "Pantalla 1",
			ProductIDs: []uuid.UUID{},
		}}
	}

	var screens []QuickScreen
	for page := 0; page*DefaultPageSize < len(catalogProductIDs); page++ {
		start := page * DefaultPageSize
		end := start + DefaultPageSize
		if end > len(catalogProductIDs) {
			end = len(catalogProductIDs)
		}
		screens = append(screens, QuickScreen{
			ID:         uuid.New(),
			Name:       fmt.Sprintf("Pantalla %d", page+1),
			ProductIDs: append([]uuid.UUID{}, catalogProductIDs[start:end]...),
		})
	}
	return screens
}

// FilterByCatalog descarta las referencias a productos que ya no existen
// en el catálogo, preservando el orden del resto. Retorna además si algo
// fue descartado (para re-persistir la lista limpia).
func FilterByCatalog(screens []QuickScreen, catalogProductIDs []uuid.UUID) ([]QuickScreen, bool) {
	known := make(map[uuid.UUID]struct{}, len(catalogProductIDs))
	for _, id := range catalogProductIDs {
		known[id] = struct{}{}
	}

	dropped := false
	filtered := make([]QuickScreen, 0, len(screens))
	for _, screen := range screens {
		kept := make([]uuid.UUID, 0, len(screen.ProductIDs))
		for _, id := range screen.ProductIDs {
			if _, ok := known[id]; ok {
				kept = append(kept, id)
			} else {
				dropped = true
			}
		}
		screen.ProductIDs = kept
		filtered = append(filtered, screen)
	}
	return filtered, dropped
}

// FindScreen busca una pantalla por id dentro de la lista
func FindScreen(screens []QuickScreen, screenID uuid.UUID) (*QuickScreen, error) {
	for i := range screens {
		if screens[i].ID == screenID {
			return &screens[i], nil
		}
	}
	return nil, ErrScreenNotFound
}

// AddProduct agrega un botón al final de la pantalla. Agregar un producto
// que ya está es un no-op (el botón no se duplica).
func (s *QuickScreen) AddProduct(productID uuid.UUID) {
	for _, id := range s.ProductIDs {
		if id == productID {
			return
		}
	}
	s.ProductIDs = append(s.ProductIDs, productID)
}

// RemoveProduct saca el botón de la pantalla; si no está, no hace nada
func (s *QuickScreen) RemoveProduct(productID uuid.UUID) {
	kept := s.ProductIDs[:0]
	for _, id := range s.ProductIDs {
		if id != productID {
			kept = append(kept, id)
		}
	}
	s.ProductIDs = kept
}

// Reorder reemplaza el orden de los botones por el recibido (drag and
// drop). El nuevo orden tiene que ser una permutación de los botones
// actuales; cualquier otra cosa se rechaza.
func (s *QuickScreen) Reorder(productIDs []uuid.UUID) error {
	if len(productIDs) != len(s.ProductIDs) {
		return ErrInvalidOrder
	}
	current := make(map[uuid.UUID]int, len(s.ProductIDs))
	for _, id := range s.ProductIDs {
		current[id]++
	}
	for _, id := range productIDs {
		if current[id] == 0 {
			return ErrInvalidOrder
		}
		current[id]--
	}
	s.ProductIDs = append([]uuid.UUID{}, productIDs...)
	return nil
}

// Rename cambia el nombre de la pantalla
func (s *QuickScreen) Rename(name string) error {
	if name == "" {
		return ErrScreenNameRequired
	}
	s.Name = name
	return nil
}
