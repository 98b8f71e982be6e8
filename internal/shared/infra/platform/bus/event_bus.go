package bus

import (
	"context"
	"errors"
)

// ErrPublisherUnavailable lo devuelven los adapters cuando el broker no acepta el evento.
var ErrPublisherUnavailable = errors.New("event publisher unavailable")

// Keyer lo implementan los eventos que necesitan una clave de partición estable.
type Keyer interface {
	PartitionKey() string
}

// Typed lo implementan los eventos que declaran su tipo; los adapters lo envían como metadato.
type Typed interface {
	EventType() string
}

// La semántica de destination/nombre y formato del payload la decides en los adapters.
type EventBus interface {
	Publish(ctx context.Context, destination string, event interface{}) error
}

// EventType devuelve el tipo declarado por el evento, o "" si no lo declara.
func EventType(event interface{}) string {
	if typed, ok := event.(Typed); ok {
		return typed.EventType()
	}
	return ""
}

// PartitionKey devuelve la clave de partición del evento, o "" si no la tiene.
func PartitionKey(event interface{}) string {
	if keyer, ok := event.(Keyer); ok {
		return keyer.PartitionKey()
	}
	return ""
}
