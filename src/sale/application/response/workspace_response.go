package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
)

// WorkspaceView la vista del puesto de caja después de una operación:
// carrito actual, totales (reducciones client-side) y resumen de pagos
type WorkspaceView struct {
	SessionID  uuid.UUID              `json:"session_id"`
	Sale       *entity.Sale           `json:"sale"`
	ItemCount  int                    `json:"item_count"`
	Subtotal   decimal.Decimal        `json:"subtotal"`
	Summary    *entity.PaymentSummary `json:"summary,omitempty"`
	MayBeStale bool                   `json:"may_be_stale"`
}

// NewWorkspaceView arma la vista a partir del estado del workspace
func NewWorkspaceView(ws *entity.Workspace) *WorkspaceView {
	view := &WorkspaceView{
		SessionID:  ws.SessionID,
		Sale:       ws.Sale,
		Subtotal:   decimal.Zero,
		Summary:    ws.Summary,
		MayBeStale: ws.MayBeStale,
	}
	if ws.Sale != nil {
		view.ItemCount = ws.Sale.ItemCount()
		view.Subtotal = ws.Sale.Subtotal()
	}
	return view
}

// PostSaleResponse resultado de postear: la venta posteada y el draft
// que la reemplaza (null si la apertura del siguiente falló)
type PostSaleResponse struct {
	Posted    *entity.Sale   `json:"posted"`
	Workspace *WorkspaceView `json:"workspace"`
}
