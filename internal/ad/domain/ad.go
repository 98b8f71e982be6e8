package domain

import (
	"time"

	sharedBus "github.com/davicafu/adsflow/internal/shared/infra/platform/bus"
)

// TimestampLayout es el formato ISO-8601 UTC con milisegundos usado en createdAt.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Ad representa un anuncio ya creado por el pipeline.
// El orden de los campos es el orden del JSON publicado y devuelto al cliente.
type Ad struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ImageURL  *string `json:"imageUrl"`
	CreatedAt string  `json:"createdAt"`
}

// AdCreationRequest es la entrada ya parseada de una única invocación. No se persiste.
type AdCreationRequest struct {
	Title     string
	Price     float64
	ImageData string
}

// HasImage indica si la petición trae una imagen que subir.
func (r AdCreationRequest) HasImage() bool {
	return r.ImageData != ""
}

func (a *Ad) PartitionKey() string {
	return a.ID
}

func (a *Ad) EventType() string {
	return AdCreated
}

// FormatTimestamp convierte un instante al formato de createdAt.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Verificación estática para asegurar que Ad implementa las interfaces
var (
	_ sharedBus.Keyer = (*Ad)(nil)
	_ sharedBus.Typed = (*Ad)(nil)
)
