package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/Maximuscb/APOS-sub001/src/session/application/response"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
	"github.com/Maximuscb/APOS-sub001/src/session/domain/port"
)

// ResolveSessionUseCase resuelve, al entrar al workspace, si el usuario ya
// es dueño de una sesión abierta en la tienda. Si no, arma la lista de
// cajas anotada para que elija.
type ResolveSessionUseCase struct {
	registerService port.RegisterService
	sessionCache    port.SessionCache
}

// NewResolveSessionUseCase crea una nueva instancia del caso de uso
func NewResolveSessionUseCase(registerService port.RegisterService, sessionCache port.SessionCache) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{
		registerService: registerService,
		sessionCache:    sessionCache,
	}
}

// Execute resuelve la sesión del usuario para la tienda activa
func (uc *ResolveSessionUseCase) Execute(ctx context.Context, userID, storeID uuid.UUID, authToken string) (*response.ResolveSessionResponse, error) {
	// Una entrada cacheada de OTRA tienda se descarta, no se reutiliza
	cached, err := uc.sessionCache.Get(ctx, userID)
	if err != nil {
		log.Printf("⚠️  No se pudo leer el cache de sesión: %v", err)
		cached = nil
	}
	if cached != nil && cached.StoreID != storeID {
		if err := uc.sessionCache.Delete(ctx, userID); err != nil {
			log.Printf("⚠️  No se pudo invalidar el cache de sesión: %v", err)
		}
		cached = nil
	}

	// El servidor es autoritativo: siempre se verifica contra el listado
	registers, err := uc.registerService.ListRegisters(ctx, storeID, authToken)
	if err != nil {
		return nil, fmt.Errorf("error listing registers: %w", err)
	}

	owned := ownedByCaller(registers, userID)

	// El back-office no debería reportar dos sesiones abiertas del mismo
	// usuario; si pasa, se elige la de menor register id y se deja rastro
	if len(owned) > 1 {
		log.Printf("⚠️  ANOMALY: user %s owns %d open sessions in store %s, picking lowest register id", userID, len(owned), storeID)
		sort.Slice(owned, func(i, j int) bool {
			return owned[i].ID.String() < owned[j].ID.String()
		})
	}

	if len(owned) > 0 {
		session := sessionFor(&owned[0], storeID)
		if err := uc.sessionCache.Put(ctx, userID, entity.CachedSession{
			SessionID:      session.ID,
			RegisterID:     session.RegisterID,
			RegisterNumber: session.RegisterNumber,
			StoreID:        storeID,
		}); err != nil {
			log.Printf("⚠️  No se pudo cachear la sesión: %v", err)
		}

		return &response.ResolveSessionResponse{
			Resolution: response.ResolutionOwned,
			Session:    session,
		}, nil
	}

	// El cache apuntaba a una sesión que ya no está abierta en el servidor
	if cached != nil {
		if err := uc.sessionCache.Delete(ctx, userID); err != nil {
			log.Printf("⚠️  No se pudo invalidar el cache de sesión: %v", err)
		}
	}

	return &response.ResolveSessionResponse{
		Resolution: response.ResolutionSelectionRequired,
		Registers:  annotate(registers, userID),
	}, nil
}

// ownedByCaller filtra las cajas cuya sesión abierta pertenece al usuario
func ownedByCaller(registers []entity.Register, userID uuid.UUID) []entity.Register {
	var owned []entity.Register
	for _, r := range registers {
		if r.AvailabilityFor(userID) == entity.AvailabilityOwnedByCaller {
			owned = append(owned, r)
		}
	}
	return owned
}

// annotate arma la vista de selección: las cajas tomadas por otro usuario
// no son seleccionables
func annotate(registers []entity.Register, userID uuid.UUID) []response.RegisterView {
	views := make([]response.RegisterView, 0, len(registers))
	for _, r := range registers {
		availability := r.AvailabilityFor(userID)
		view := response.RegisterView{
			RegisterID:   r.ID,
			Number:       r.Number,
			Name:         r.Name,
			Availability: availability,
			Selectable:   availability != entity.AvailabilityOwnedByOther,
		}
		if availability == entity.AvailabilityOwnedByOther {
			ownerID := r.CurrentSession.UserID
			view.OwnedBy = &ownerID
		}
		views = append(views, view)
	}
	return views
}

func sessionFor(register *entity.Register, storeID uuid.UUID) *entity.RegisterSession {
	session := *register.CurrentSession
	session.RegisterID = register.ID
	session.RegisterNumber = register.Number
	session.StoreID = storeID
	return &session
}
