package entity

import "errors"

var (
	// ErrScreenNotFound la pantalla pedida no existe para el usuario
	ErrScreenNotFound = errors.New("quick screen not found")

	// ErrScreenNameRequired el nombre de la pantalla no puede quedar vacío
	ErrScreenNameRequired = errors.New("screen name is required")

	// ErrProductNotInCatalog el producto no existe en el catálogo activo
	ErrProductNotInCatalog = errors.New("product is not in the catalog")

	// ErrInvalidOrder el nuevo orden no es una permutación de los botones
	ErrInvalidOrder = errors.New("order must be a permutation of the current buttons")

	// ErrCorruptScreens el valor guardado no se pudo deserializar
	ErrCorruptScreens = errors.New("stored quick screens are corrupt")
)
