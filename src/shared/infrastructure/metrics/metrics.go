package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/eventbus"
)

// Contadores del workflow de caja
var (
	SalesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "register_sales_completed_total",
		Help: "Ventas completadas en este terminal",
	})

	PaymentsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "register_payments_applied_total",
		Help: "Pagos aplicados contra ventas",
	})

	RegisterConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "register_open_conflicts_total",
		Help: "Intentos de abrir una caja ya tomada por otro usuario",
	})

	ShiftsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "register_shifts_closed_total",
		Help: "Turnos cerrados con arqueo",
	})

	StaleRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "register_stale_refreshes_total",
		Help: "Refrescos post-mutación que fallaron (vista posiblemente desactualizada)",
	})
)

// SubscribeToBus engancha los contadores al bus de eventos
func SubscribeToBus(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.EventSaleCompleted, func(e eventbus.Event) {
		SalesCompleted.Inc()
	})
	bus.Subscribe(eventbus.EventSessionClosed, func(e eventbus.Event) {
		ShiftsClosed.Inc()
	})
}
