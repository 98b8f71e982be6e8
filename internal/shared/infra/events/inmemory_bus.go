package events

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	sharedBus "github.com/davicafu/adsflow/internal/shared/infra/platform/bus"
	sharedUtils "github.com/davicafu/adsflow/internal/shared/infra/utils"
)

// InMemoryEventBus reparte los eventos, ya serializados, entre los suscriptores de cada destino.
type InMemoryEventBus struct {
	subscribers map[string][]chan []byte
	mu          sync.RWMutex
	closed      bool
	once        sync.Once
	log         *zap.Logger
}

// Verifica en tiempo de compilación que cumple la interfaz
var _ sharedBus.EventBus = (*InMemoryEventBus)(nil)

func NewInMemoryEventBus(log *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers: make(map[string][]chan []byte),
		log:         log,
	}
}

// Publish entrega el evento a los suscriptores de destination sin bloquear.
// Un suscriptor con el buffer lleno pierde el evento.
func (b *InMemoryEventBus) Publish(ctx context.Context, destination string, event interface{}) error {
	payload, err := sharedUtils.MarshalPayload(event)
	if err != nil {
		return fmt.Errorf("%w: %w", sharedBus.ErrPublisherUnavailable, err)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return fmt.Errorf("%w: bus closed", sharedBus.ErrPublisherUnavailable)
	}

	for _, subChan := range b.subscribers[destination] {
		select {
		case subChan <- payload:
		default:
			b.log.Warn("Subscriber buffer full, event dropped", zap.String("destination", destination))
		}
	}
	return nil
}

// Subscribe suscribe un nuevo oyente a destination.
func (b *InMemoryEventBus) Subscribe(destination string, bufferSize int) <-chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	subChan := make(chan []byte, bufferSize)
	if b.closed {
		close(subChan)
		return subChan
	}
	b.subscribers[destination] = append(b.subscribers[destination], subChan)
	return subChan
}

// Close cierra todos los canales de suscripción. Publicar después devuelve error.
func (b *InMemoryEventBus) Close() {
	b.once.Do(func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		b.closed = true
		for _, subs := range b.subscribers {
			for _, subChan := range subs {
				close(subChan)
			}
		}
	})
}
