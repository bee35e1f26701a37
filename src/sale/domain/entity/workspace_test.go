package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(t *testing.T) (*Workspace, *Sale) {
	t.Helper()
	ws := NewWorkspace(uuid.New(), uuid.New())
	sale := &Sale{
		ID:             uuid.New(),
		DocumentNumber: "S-0001",
		Status:         SaleStatusDraft,
		StoreID:        ws.StoreID,
		SessionID:      uuid.New(),
	}
	ws.BindSession(sale.SessionID, nil)
	ws.BeginSale(sale)
	return ws, sale
}

func TestWorkspace_ApplyLine_MergeByIdentity(t *testing.T) {
	ws, sale := newTestWorkspace(t)

	lineID := uuid.New()
	productID := uuid.New()
	price := decimal.NewFromFloat(5.00)

	// Primer agregado: qty 1
	err := ws.ApplyLine(sale.ID, SaleLine{
		ID: lineID, ProductID: productID, Quantity: 1,
		UnitPrice: price, LineTotal: price,
	})
	require.NoError(t, err)

	// Segundo click sobre el mismo producto: el servidor devuelve la MISMA
	// línea con la cantidad ya acumulada; el merge debe reemplazar, no duplicar
	err = ws.ApplyLine(sale.ID, SaleLine{
		ID: lineID, ProductID: productID, Quantity: 2,
		UnitPrice: price, LineTotal: price.Mul(decimal.NewFromInt(2)),
	})
	require.NoError(t, err)

	require.Len(t, ws.Sale.Lines, 1, "nunca dos filas para el mismo producto")
	assert.Equal(t, 2, ws.Sale.Lines[0].Quantity)
	assert.True(t, ws.Sale.Lines[0].LineTotal.Equal(decimal.NewFromFloat(10.00)))
	assert.Equal(t, 2, ws.Sale.ItemCount())
	assert.True(t, ws.Sale.Subtotal().Equal(decimal.NewFromFloat(10.00)))
}

func TestWorkspace_ApplyLine_AppendsUnknownIdentity(t *testing.T) {
	ws, sale := newTestWorkspace(t)

	err := ws.ApplyLine(sale.ID, SaleLine{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(3), LineTotal: decimal.NewFromInt(3)})
	require.NoError(t, err)
	err = ws.ApplyLine(sale.ID, SaleLine{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(4), LineTotal: decimal.NewFromInt(8)})
	require.NoError(t, err)

	assert.Len(t, ws.Sale.Lines, 2)
	assert.Equal(t, 3, ws.Sale.ItemCount())
	assert.True(t, ws.Sale.Subtotal().Equal(decimal.NewFromInt(11)))
}

func TestWorkspace_ApplyLine_DiscardsStaleResponse(t *testing.T) {
	ws, _ := newTestWorkspace(t)

	// Respuesta emitida contra una venta que ya no es la actual
	staleSaleID := uuid.New()
	err := ws.ApplyLine(staleSaleID, SaleLine{ID: uuid.New(), Quantity: 1})

	assert.ErrorIs(t, err, ErrStaleResponse)
	assert.Empty(t, ws.Sale.Lines, "el estado no debe mutar con una respuesta vieja")
}

func TestWorkspace_CompleteSale_GatedOnRemaining(t *testing.T) {
	ws, sale := newTestWorkspace(t)

	// Sin resumen no se puede completar
	_, err := ws.CompleteSale(sale.ID)
	assert.ErrorIs(t, err, ErrNoPaymentSummary)

	// Con saldo pendiente tampoco
	require.NoError(t, ws.ApplySummary(sale.ID, PaymentSummary{
		Due:       decimal.NewFromInt(10),
		Paid:      decimal.NewFromInt(4),
		Remaining: decimal.NewFromInt(6),
		Status:    PaymentStatusPartial,
	}))
	assert.False(t, ws.CanComplete())
	_, err = ws.CompleteSale(sale.ID)
	assert.ErrorIs(t, err, ErrBalanceOutstanding)

	// remaining ≤ 0 es la única condición que habilita completar
	require.NoError(t, ws.ApplySummary(sale.ID, PaymentSummary{
		Due:       decimal.NewFromInt(10),
		Paid:      decimal.NewFromInt(10),
		Remaining: decimal.Zero,
		Status:    PaymentStatusPaid,
	}))
	assert.True(t, ws.CanComplete())

	completed, err := ws.CompleteSale(sale.ID)
	require.NoError(t, err)
	assert.Equal(t, SaleStatusPosted, completed.Status)
	assert.Nil(t, ws.Sale, "el carrito queda limpio para el próximo draft")
	assert.Nil(t, ws.Summary)
}

func TestWorkspace_CompleteSale_StaleSaleID(t *testing.T) {
	ws, sale := newTestWorkspace(t)
	require.NoError(t, ws.ApplySummary(sale.ID, PaymentSummary{Remaining: decimal.Zero, Status: PaymentStatusPaid}))

	_, err := ws.CompleteSale(uuid.New())
	assert.ErrorIs(t, err, ErrStaleResponse)
	assert.NotNil(t, ws.Sale)
}

func TestWorkspace_BeginSale_ResetsSummaryAndStaleFlag(t *testing.T) {
	ws, sale := newTestWorkspace(t)
	require.NoError(t, ws.ApplySummary(sale.ID, PaymentSummary{Remaining: decimal.Zero}))
	ws.MarkStale()

	next := &Sale{ID: uuid.New(), Status: SaleStatusDraft}
	ws.BeginSale(next)

	assert.Nil(t, ws.Summary)
	assert.False(t, ws.MayBeStale)
	assert.Empty(t, ws.Sale.Lines)
}

func TestWorkspace_RefreshAndSummary_ClearStaleFlag(t *testing.T) {
	ws, sale := newTestWorkspace(t)
	ws.MarkStale()
	require.True(t, ws.MayBeStale)

	require.NoError(t, ws.ApplySummary(sale.ID, PaymentSummary{Remaining: decimal.NewFromInt(5)}))
	assert.False(t, ws.MayBeStale, "un refresco exitoso limpia la marca")

	ws.MarkStale()
	refreshed := &Sale{ID: sale.ID, Status: SaleStatusDraft}
	require.NoError(t, ws.RefreshSale(refreshed))
	assert.False(t, ws.MayBeStale)
}
