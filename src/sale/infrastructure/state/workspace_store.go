package state

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/sale/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/shared/infrastructure/eventbus"
)

// WorkspaceStore registro en memoria de los workspaces activos del
// terminal, uno por (usuario, tienda). Garantiza la disciplina de "una
// mutación en vuelo por workspace": mientras una operación tiene tomado
// el workspace, la siguiente recibe entity.ErrOperationInFlight (el
// equivalente del control deshabilitado en la UI).
type WorkspaceStore struct {
	mu      sync.RWMutex
	entries map[string]*workspaceEntry
}

type workspaceEntry struct {
	busy      sync.Mutex
	workspace *entity.Workspace
}

// NewWorkspaceStore crea un registro vacío
func NewWorkspaceStore() *WorkspaceStore {
	return &WorkspaceStore{
		entries: make(map[string]*workspaceEntry),
	}
}

func key(userID, storeID uuid.UUID) string {
	return userID.String() + "|" + storeID.String()
}

// Acquire toma el workspace del (usuario, tienda) en forma exclusiva,
// creándolo si no existe. El release devuelto DEBE llamarse al terminar
// la operación. Si otra operación está en vuelo retorna
// entity.ErrOperationInFlight sin bloquear.
func (s *WorkspaceStore) Acquire(userID, storeID uuid.UUID) (*entity.Workspace, func(), error) {
	s.mu.Lock()
	entry, ok := s.entries[key(userID, storeID)]
	if !ok {
		entry = &workspaceEntry{workspace: entity.NewWorkspace(userID, storeID)}
		s.entries[key(userID, storeID)] = entry
	}
	s.mu.Unlock()

	if !entry.busy.TryLock() {
		return nil, nil, entity.ErrOperationInFlight
	}
	return entry.workspace, entry.busy.Unlock, nil
}

// Evict descarta el workspace del (usuario, tienda); se usa cuando la
// sesión se cierra y el scope del carrito deja de valer
func (s *WorkspaceStore) Evict(userID, storeID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key(userID, storeID))
}

// SubscribeToBus invalida workspaces cuando llega la señal de cierre de
// sesión por el bus (en lugar de un reload destructivo)
func (s *WorkspaceStore) SubscribeToBus(bus *eventbus.Bus) {
	bus.Subscribe(eventbus.EventSessionClosed, func(e eventbus.Event) {
		userID, err := uuid.Parse(e.UserID)
		if err != nil {
			return
		}
		storeID, err := uuid.Parse(e.StoreID)
		if err != nil {
			return
		}
		s.Evict(userID, storeID)
		log.Printf("🔄 Workspace evicted after session close: user=%s store=%s", userID, storeID)
	})
}
