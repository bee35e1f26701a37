package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maximuscb/APOS-sub001/src/session/application/request"
	"github.com/Maximuscb/APOS-sub001/src/session/application/response"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/eventbus"
)

// fakeRegisterService simula el back-office de cajas con un
// check-and-set en memoria para la carrera de apertura
type fakeRegisterService struct {
	registers   []entity.Register
	closeResult *entity.ShiftCloseResult
	closeErr    error
}

func (f *fakeRegisterService) ListRegisters(_ context.Context, _ uuid.UUID, _ string) ([]entity.Register, error) {
	return f.registers, nil
}

func (f *fakeRegisterService) OpenShift(_ context.Context, storeID, registerID, userID uuid.UUID, _ decimal.Decimal, _ string) (*entity.RegisterSession, error) {
	for i := range f.registers {
		r := &f.registers[i]
		if r.ID != registerID {
			continue
		}
		if r.CurrentSession != nil {
			return nil, entity.ErrRegisterInUse
		}
		session := &entity.RegisterSession{
			ID:             uuid.New(),
			RegisterID:     r.ID,
			RegisterNumber: r.Number,
			UserID:         userID,
			StoreID:        storeID,
			Status:         entity.SessionStatusOpen,
		}
		r.CurrentSession = session
		return session, nil
	}
	return nil, entity.ErrRegisterNotFound
}

func (f *fakeRegisterService) CloseShift(_ context.Context, _, sessionID uuid.UUID, closingCash decimal.Decimal, notes, _ string) (*entity.ShiftCloseResult, error) {
	if f.closeErr != nil {
		return nil, f.closeErr
	}
	if f.closeResult != nil {
		return f.closeResult, nil
	}
	return &entity.ShiftCloseResult{
		SessionID:   sessionID,
		ClosingCash: closingCash,
		Notes:       notes,
		ClosedAt:    time.Now().UTC(),
	}, nil
}

// memorySessionCache implementación en memoria del cache de sesión
type memorySessionCache struct {
	entries map[uuid.UUID]entity.CachedSession
}

func newMemorySessionCache() *memorySessionCache {
	return &memorySessionCache{entries: make(map[uuid.UUID]entity.CachedSession)}
}

func (m *memorySessionCache) Get(_ context.Context, userID uuid.UUID) (*entity.CachedSession, error) {
	entry, ok := m.entries[userID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (m *memorySessionCache) Put(_ context.Context, userID uuid.UUID, session entity.CachedSession) error {
	m.entries[userID] = session
	return nil
}

func (m *memorySessionCache) Delete(_ context.Context, userID uuid.UUID) error {
	delete(m.entries, userID)
	return nil
}

func register(number int, session *entity.RegisterSession) entity.Register {
	return entity.Register{
		ID:             uuid.New(),
		Number:         number,
		Name:           "Caja",
		CurrentSession: session,
	}
}

func TestResolveSessionOwnedByCaller(t *testing.T) {
	userID := uuid.New()
	storeID := uuid.New()

	owned := register(2, &entity.RegisterSession{ID: uuid.New(), UserID: userID, Status: entity.SessionStatusOpen})
	service := &fakeRegisterService{registers: []entity.Register{register(1, nil), owned}}
	cache := newMemorySessionCache()

	uc := NewResolveSessionUseCase(service, cache)
	resp, err := uc.Execute(context.Background(), userID, storeID, "")

	require.NoError(t, err)
	assert.Equal(t, response.ResolutionOwned, resp.Resolution)
	require.NotNil(t, resp.Session)
	assert.Equal(t, owned.ID, resp.Session.RegisterID)
	assert.Equal(t, 2, resp.Session.RegisterNumber)

	// La identidad quedó cacheada para el próximo ingreso
	cached, err := cache.Get(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, owned.CurrentSession.ID, cached.SessionID)
	assert.Equal(t, storeID, cached.StoreID)
}

func TestResolveSessionRequiresSelection(t *testing.T) {
	userID := uuid.New()
	otherUser := uuid.New()

	taken := register(2, &entity.RegisterSession{ID: uuid.New(), UserID: otherUser, Status: entity.SessionStatusOpen})
	service := &fakeRegisterService{registers: []entity.Register{register(1, nil), taken}}

	uc := NewResolveSessionUseCase(service, newMemorySessionCache())
	resp, err := uc.Execute(context.Background(), userID, uuid.New(), "")

	require.NoError(t, err)
	assert.Equal(t, response.ResolutionSelectionRequired, resp.Resolution)
	require.Len(t, resp.Registers, 2)

	// La caja libre es seleccionable, la tomada por otro no
	assert.True(t, resp.Registers[0].Selectable)
	assert.Nil(t, resp.Registers[0].OwnedBy)
	assert.False(t, resp.Registers[1].Selectable)
	require.NotNil(t, resp.Registers[1].OwnedBy)
	assert.Equal(t, otherUser, *resp.Registers[1].OwnedBy)
}

func TestResolveSessionDiscardsCacheFromAnotherStore(t *testing.T) {
	userID := uuid.New()
	storeID := uuid.New()

	cache := newMemorySessionCache()
	require.NoError(t, cache.Put(context.Background(), userID, entity.CachedSession{
		SessionID: uuid.New(),
		StoreID:   uuid.New(), // otra tienda
	}))

	service := &fakeRegisterService{registers: []entity.Register{register(1, nil)}}
	uc := NewResolveSessionUseCase(service, cache)
	resp, err := uc.Execute(context.Background(), userID, storeID, "")

	require.NoError(t, err)
	assert.Equal(t, response.ResolutionSelectionRequired, resp.Resolution)

	cached, err := cache.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestResolveSessionDiscardsStaleCache(t *testing.T) {
	userID := uuid.New()
	storeID := uuid.New()

	// El cache apunta a una sesión que el servidor ya no reporta abierta
	cache := newMemorySessionCache()
	require.NoError(t, cache.Put(context.Background(), userID, entity.CachedSession{
		SessionID: uuid.New(),
		StoreID:   storeID,
	}))

	service := &fakeRegisterService{registers: []entity.Register{register(1, nil)}}
	uc := NewResolveSessionUseCase(service, cache)
	resp, err := uc.Execute(context.Background(), userID, storeID, "")

	require.NoError(t, err)
	assert.Equal(t, response.ResolutionSelectionRequired, resp.Resolution)

	cached, err := cache.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestResolveSessionPicksDeterministicOnAnomaly(t *testing.T) {
	userID := uuid.New()

	// Dos sesiones abiertas del mismo usuario: no debería pasar, pero la
	// resolución tiene que ser determinística
	a := register(1, &entity.RegisterSession{ID: uuid.New(), UserID: userID, Status: entity.SessionStatusOpen})
	b := register(2, &entity.RegisterSession{ID: uuid.New(), UserID: userID, Status: entity.SessionStatusOpen})
	lowest := a
	if b.ID.String() < a.ID.String() {
		lowest = b
	}

	service := &fakeRegisterService{registers: []entity.Register{a, b}}
	uc := NewResolveSessionUseCase(service, newMemorySessionCache())

	resp, err := uc.Execute(context.Background(), userID, uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, response.ResolutionOwned, resp.Resolution)
	assert.Equal(t, lowest.ID, resp.Session.RegisterID)
}

func TestOpenShiftCachesSessionAndPublishes(t *testing.T) {
	userID := uuid.New()
	storeID := uuid.New()
	free := register(1, nil)

	service := &fakeRegisterService{registers: []entity.Register{free}}
	cache := newMemorySessionCache()
	bus := eventbus.New()

	var opened []eventbus.Event
	bus.Subscribe(eventbus.EventSessionOpened, func(e eventbus.Event) {
		opened = append(opened, e)
	})

	uc := NewOpenShiftUseCase(service, cache, bus)
	session, err := uc.Execute(context.Background(), userID, storeID, "", &request.OpenShiftRequest{
		RegisterID:  free.ID,
		OpeningCash: decimal.RequireFromString("100.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusOpen, session.Status)
	assert.Equal(t, free.ID, session.RegisterID)

	cached, err := cache.Get(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, session.ID, cached.SessionID)

	require.Len(t, opened, 1)
	assert.Equal(t, session.ID.String(), opened[0].AggregateID)
}

func TestOpenShiftConflictWhenRegisterTaken(t *testing.T) {
	userID := uuid.New()
	taken := register(1, &entity.RegisterSession{ID: uuid.New(), UserID: uuid.New(), Status: entity.SessionStatusOpen})

	service := &fakeRegisterService{registers: []entity.Register{taken}}
	cache := newMemorySessionCache()

	uc := NewOpenShiftUseCase(service, cache, eventbus.New())
	_, err := uc.Execute(context.Background(), userID, uuid.New(), "", &request.OpenShiftRequest{
		RegisterID:  taken.ID,
		OpeningCash: decimal.Zero,
	})

	assert.ErrorIs(t, err, entity.ErrRegisterInUse)

	// El conflicto no deja rastro en el cache
	cached, err := cache.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestOpenShiftValidatesInput(t *testing.T) {
	uc := NewOpenShiftUseCase(&fakeRegisterService{}, newMemorySessionCache(), eventbus.New())

	_, err := uc.Execute(context.Background(), uuid.New(), uuid.New(), "", &request.OpenShiftRequest{
		OpeningCash: decimal.Zero,
	})
	assert.ErrorIs(t, err, entity.ErrRegisterIDRequired)

	_, err = uc.Execute(context.Background(), uuid.New(), uuid.New(), "", &request.OpenShiftRequest{
		RegisterID:  uuid.New(),
		OpeningCash: decimal.RequireFromString("-1.00"),
	})
	assert.ErrorIs(t, err, entity.ErrInvalidCashAmount)
}

func TestCloseShiftComputesDirection(t *testing.T) {
	userID := uuid.New()
	storeID := uuid.New()
	sessionID := uuid.New()

	expected := decimal.RequireFromString("150.00")
	variance := decimal.RequireFromString("-3.50")

	service := &fakeRegisterService{
		closeResult: &entity.ShiftCloseResult{
			SessionID:    sessionID,
			ClosingCash:  decimal.RequireFromString("146.50"),
			ExpectedCash: &expected,
			Variance:     &variance,
			ClosedAt:     time.Now().UTC(),
		},
	}
	cache := newMemorySessionCache()
	require.NoError(t, cache.Put(context.Background(), userID, entity.CachedSession{SessionID: sessionID, StoreID: storeID}))

	bus := eventbus.New()
	var closed []eventbus.Event
	bus.Subscribe(eventbus.EventSessionClosed, func(e eventbus.Event) {
		closed = append(closed, e)
	})

	uc := NewCloseShiftUseCase(service, cache, bus)
	resp, err := uc.Execute(context.Background(), userID, storeID, sessionID, "", &request.CloseShiftRequest{
		ClosingCash: decimal.RequireFromString("146.50"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VarianceShort, resp.Direction)
	require.NotNil(t, resp.Variance)
	assert.True(t, resp.Variance.Equal(variance))

	// El cache quedó invalidado y el cierre se anunció por el bus
	cached, err := cache.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, cached)
	require.Len(t, closed, 1)
	assert.Equal(t, sessionID.String(), closed[0].AggregateID)
}

func TestCloseShiftUnknownVarianceStaysUnknown(t *testing.T) {
	sessionID := uuid.New()

	// El servidor no pudo calcular el esperado: nada de $0 falsos
	service := &fakeRegisterService{
		closeResult: &entity.ShiftCloseResult{
			SessionID:   sessionID,
			ClosingCash: decimal.RequireFromString("80.00"),
			ClosedAt:    time.Now().UTC(),
		},
	}

	uc := NewCloseShiftUseCase(service, newMemorySessionCache(), eventbus.New())
	resp, err := uc.Execute(context.Background(), uuid.New(), uuid.New(), sessionID, "", &request.CloseShiftRequest{
		ClosingCash: decimal.RequireFromString("80.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VarianceUnknown, resp.Direction)
	assert.Nil(t, resp.ExpectedCash)
	assert.Nil(t, resp.Variance)
}

func TestCloseShiftValidatesClosingCash(t *testing.T) {
	uc := NewCloseShiftUseCase(&fakeRegisterService{}, newMemorySessionCache(), eventbus.New())

	_, err := uc.Execute(context.Background(), uuid.New(), uuid.New(), uuid.New(), "", &request.CloseShiftRequest{
		ClosingCash: decimal.RequireFromString("-0.01"),
	})
	assert.ErrorIs(t, err, entity.ErrInvalidCashAmount)
}
