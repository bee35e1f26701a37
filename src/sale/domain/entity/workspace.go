package entity

import (
	"github.com/google/uuid"
)

// Workspace es el estado explícito del puesto de caja: sesión × venta ×
// pagos. Cada respuesta del servidor entra como un evento por uno de los
// métodos Apply*, etiquetado con el sale id contra el que se emitió el
// request; una respuesta de una venta que ya no es la actual se descarta
// con ErrStaleResponse en vez de pisar el estado.
//
// La entidad es pura (sin locks ni I/O): la serialización de mutaciones
// la garantiza el WorkspaceStore que la contiene.
type Workspace struct {
	UserID     uuid.UUID       `json:"user_id"`
	StoreID    uuid.UUID       `json:"store_id"`
	SessionID  uuid.UUID       `json:"session_id"`
	RegisterID *uuid.UUID      `json:"register_id,omitempty"`
	Sale       *Sale           `json:"sale,omitempty"`
	Summary    *PaymentSummary `json:"summary,omitempty"`

	// MayBeStale marca que un refresco post-mutación falló: el servidor
	// ya avanzó pero la vista local puede estar atrasada
	MayBeStale bool `json:"may_be_stale"`
}

// NewWorkspace crea el workspace de un (usuario, tienda)
func NewWorkspace(userID, storeID uuid.UUID) *Workspace {
	return &Workspace{
		UserID:  userID,
		StoreID: storeID,
	}
}

// BindSession ata el workspace a la sesión de caja abierta
func (w *Workspace) BindSession(sessionID uuid.UUID, registerID *uuid.UUID) {
	w.SessionID = sessionID
	w.RegisterID = registerID
}

// BeginSale instala una nueva venta draft como carrito actual
func (w *Workspace) BeginSale(sale *Sale) {
	w.Sale = sale
	w.Summary = nil
	w.MayBeStale = false
}

// HasCurrentSale indica si saleID es el draft actual del workspace
func (w *Workspace) HasCurrentSale(saleID uuid.UUID) bool {
	return w.Sale != nil && w.Sale.ID == saleID
}

// ApplyLine mergea la línea canónica devuelta por el servidor. Merge por
// identidad: si ya existe una línea local con ese id, se REEMPLAZA (la
// respuesta ya trae la cantidad acumulada); si no, se agrega. Así el
// click repetido sobre el mismo producto acumula en una sola fila sin
// que el cliente haga aritmética.
func (w *Workspace) ApplyLine(saleID uuid.UUID, line SaleLine) error {
	if !w.HasCurrentSale(saleID) {
		return ErrStaleResponse
	}

	for i := range w.Sale.Lines {
		if w.Sale.Lines[i].ID == line.ID {
			w.Sale.Lines[i] = line
			return nil
		}
	}
	w.Sale.Lines = append(w.Sale.Lines, line)
	return nil
}

// RefreshSale reemplaza la vista local de la venta por la canónica
func (w *Workspace) RefreshSale(sale *Sale) error {
	if !w.HasCurrentSale(sale.ID) {
		return ErrStaleResponse
	}
	w.Sale = sale
	w.MayBeStale = false
	return nil
}

// ApplySummary instala el resumen de pagos recalculado por el servidor
func (w *Workspace) ApplySummary(saleID uuid.UUID, summary PaymentSummary) error {
	if !w.HasCurrentSale(saleID) {
		return ErrStaleResponse
	}
	w.Summary = &summary
	w.MayBeStale = false
	return nil
}

// MarkStale marca la vista como posiblemente desactualizada (un refresco
// post-mutación falló). Se limpia con el próximo refresco exitoso.
func (w *Workspace) MarkStale() {
	w.MayBeStale = true
}

// CanComplete indica si la venta actual puede completarse: la única
// condición es remaining ≤ 0 en el último resumen conocido
func (w *Workspace) CanComplete() bool {
	return w.Sale != nil && w.Summary != nil && w.Summary.IsSettled()
}

// CompleteSale cierra el carrito actual y deja el workspace listo para el
// próximo draft. Retorna la venta completada.
func (w *Workspace) CompleteSale(saleID uuid.UUID) (*Sale, error) {
	if !w.HasCurrentSale(saleID) {
		return nil, ErrStaleResponse
	}
	if w.Summary == nil {
		return nil, ErrNoPaymentSummary
	}
	if !w.Summary.IsSettled() {
		return nil, ErrBalanceOutstanding
	}

	completed := w.Sale
	completed.Status = SaleStatusPosted
	w.Sale = nil
	w.Summary = nil
	w.MayBeStale = false
	return completed, nil
}

// Clear vacía el carrito y el resumen (por ejemplo al cerrar el turno)
func (w *Workspace) Clear() {
	w.Sale = nil
	w.Summary = nil
	w.MayBeStale = false
}
