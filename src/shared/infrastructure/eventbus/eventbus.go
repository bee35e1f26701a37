package eventbus

import (
	"log"
	"sync"
	"time"
)

// Tipos de evento publicados por el workflow
const (
	EventSessionOpened = "register.session.opened"
	EventSessionClosed = "register.session.closed"
	EventSaleCompleted = "register.sale.completed"
)

// Event es el sobre mínimo que viaja por el bus in-process.
// Reemplaza el reload destructivo: los componentes dependientes se
// suscriben y refrescan su estado cuando les llega la señal.
type Event struct {
	Type        string
	AggregateID string
	StoreID     string
	UserID      string
	Payload     interface{}
	OccurredAt  time.Time
}

// Handler procesa un evento. No debe bloquear: el bus entrega en forma
// síncrona y un handler lento frena al publicador.
type Handler func(Event)

// Bus es un publish/subscribe in-process por tipo de evento
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// New crea un bus vacío
func New() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registra un handler para un tipo de evento
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// Publish entrega el evento a todos los handlers suscriptos.
// Un handler que falla no debe cortar la entrega al resto, por eso
// cada handler se ejecuta con recover.
func (b *Bus) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	b.mu.RLock()
	subscribed := make([]Handler, len(b.handlers[event.Type]))
	copy(subscribed, b.handlers[event.Type])
	b.mu.RUnlock()

	for _, h := range subscribed {
		b.deliver(h, event)
	}
}

func (b *Bus) deliver(h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Handler panicked for event %s: %v", event.Type, r)
		}
	}()
	h(event)
}
