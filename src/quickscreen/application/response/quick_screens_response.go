package response

import (
	"github.com/Maximuscb/APOS-sub001/src/quickscreen/domain/entity"
)

// QuickScreensResponse la lista completa de pantallas del usuario
type QuickScreensResponse struct {
	Screens []entity.QuickScreen `json:"screens"`
}
