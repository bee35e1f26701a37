package entity

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func TestDefaultPartitionPagesCatalog(t *testing.T) {
	catalog := ids(35) // 16 + 16 + 3

	screens := DefaultPartition(catalog)

	require.Len(t, screens, 3)
	assert.Equal(t, "Pantalla 1", screens[0].Name)
	assert.Equal(t, "Pantalla 2", screens[1].Name)
	assert.Equal(t, "Pantalla 3", screens[2].Name)
	assert.Len(t, screens[0].ProductIDs, 16)
	assert.Len(t, screens[1].ProductIDs, 16)
	assert.Len(t, screens[2].ProductIDs, 3)

	// La partición preserva el orden del catálogo
	assert.Equal(t, catalog[0], screens[0].ProductIDs[0])
	assert.Equal(t, catalog[16], screens[1].ProductIDs[0])
	assert.Equal(t, catalog[34], screens[2].ProductIDs[2])
}

func TestDefaultPartitionEmptyCatalog(t *testing.T) {
	screens := DefaultPartition(nil)

	require.Len(t, screens, 1)
	assert.Equal(t, "Pantalla 1", screens[0].Name)
	assert.Empty(t, screens[0].ProductIDs)
}

func TestFilterByCatalogDropsUnknownPreservingOrder(t *testing.T) {
	known := ids(3)
	gone := uuid.New()

	screens := []QuickScreen{{
		ID:         uuid.New(),
		Name:       "Pantalla 1",
		ProductIDs: []uuid.UUID{known[0], gone, known[1], known[2]},
	}}

	filtered, dropped := FilterByCatalog(screens, known)

	assert.True(t, dropped)
	require.Len(t, filtered, 1)
	assert.Equal(t, []uuid.UUID{known[0], known[1], known[2]}, filtered[0].ProductIDs)
}

func TestFilterByCatalogNoChanges(t *testing.T) {
	known := ids(2)
	screens := []QuickScreen{{ID: uuid.New(), Name: "Pantalla 1", ProductIDs: known}}

	filtered, dropped := FilterByCatalog(screens, known)

	assert.False(t, dropped)
	assert.Equal(t, known, filtered[0].ProductIDs)
}

func TestAddProductIsIdempotent(t *testing.T) {
	productID := uuid.New()
	screen := QuickScreen{ID: uuid.New(), Name: "Pantalla 1"}

	screen.AddProduct(productID)
	screen.AddProduct(productID)

	assert.Equal(t, []uuid.UUID{productID}, screen.ProductIDs)
}

func TestRemoveProduct(t *testing.T) {
	keep := uuid.New()
	drop := uuid.New()
	screen := QuickScreen{ProductIDs: []uuid.UUID{keep, drop}}

	screen.RemoveProduct(drop)
	assert.Equal(t, []uuid.UUID{keep}, screen.ProductIDs)

	// Sacar lo que no está no hace nada
	screen.RemoveProduct(uuid.New())
	assert.Equal(t, []uuid.UUID{keep}, screen.ProductIDs)
}

func TestReorderRequiresPermutation(t *testing.T) {
	buttons := ids(3)
	screen := QuickScreen{ProductIDs: append([]uuid.UUID{}, buttons...)}

	// Permutación válida
	reversed := []uuid.UUID{buttons[2], buttons[1], buttons[0]}
	require.NoError(t, screen.Reorder(reversed))
	assert.Equal(t, reversed, screen.ProductIDs)

	// Largo distinto
	assert.ErrorIs(t, screen.Reorder(buttons[:2]), ErrInvalidOrder)

	// Mismo largo pero con un id ajeno
	foreign := []uuid.UUID{buttons[0], buttons[1], uuid.New()}
	assert.ErrorIs(t, screen.Reorder(foreign), ErrInvalidOrder)
}

func TestRenameRejectsEmptyName(t *testing.T) {
	screen := QuickScreen{Name: "Pantalla 1"}

	assert.ErrorIs(t, screen.Rename(""), ErrScreenNameRequired)
	assert.Equal(t, "Pantalla 1", screen.Name)

	require.NoError(t, screen.Rename("Bebidas"))
	assert.Equal(t, "Bebidas", screen.Name)
}

func TestFindScreen(t *testing.T) {
	screens := DefaultPartition(ids(20))

	found, err := FindScreen(screens, screens[1].ID)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Pantalla %d", 2), found.Name)

	_, err = FindScreen(screens, uuid.New())
	assert.ErrorIs(t, err, ErrScreenNotFound)
}
