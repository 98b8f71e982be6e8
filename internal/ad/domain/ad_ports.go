package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	sharedBus "github.com/davicafu/adsflow/internal/shared/infra/platform/bus"
)

// ---------- Errores del pipeline ----------
var (
	ErrMalformedInput   = errors.New("invalid JSON in request body")
	ErrValidationFailed = errors.New("validation failed")

	// Subcasos de ErrValidationFailed: ausencia frente a tipo/valor incorrecto.
	ErrMissingRequiredFields = fmt.Errorf("%w: title and price are required", ErrValidationFailed)
	ErrInvalidPrice          = fmt.Errorf("%w: invalid data types for price", ErrValidationFailed)

	ErrMediaUploadFailed = errors.New("media upload failed")
	ErrPersistenceFailed = errors.New("persistence failed")
	ErrPublishFailed     = errors.New("publish failed")
)

// ---------- Errores de los adapters ----------
var (
	ErrStorageUnavailable = errors.New("media storage unavailable")
	ErrInvalidPayload     = errors.New("invalid media payload")

	ErrStoreUnavailable = errors.New("record store unavailable")
	ErrConflictingKey   = errors.New("record with the same id already exists")

	ErrPublisherUnavailable = sharedBus.ErrPublisherUnavailable
)

// ---------- Interfaces (Ports) ----------

// MediaStore guarda la imagen codificada en base64 y devuelve una URL pública.
// La clave de destino solo depende de id: subir dos veces el mismo id sobrescribe.
// Debe devolver ErrInvalidPayload si imageData no se puede decodificar.
type MediaStore interface {
	Store(ctx context.Context, id, imageData string) (string, error)
}

// RecordStore persiste un Ad en la colección indicada. Solo creación.
// Debe devolver ErrConflictingKey si el id ya existe.
type RecordStore interface {
	Put(ctx context.Context, collection string, ad *Ad) error
}

// La semántica de destination y el formato del payload los deciden los adapters.
type EventPublisher interface {
	Publish(ctx context.Context, destination string, event interface{}) error
}

// IdentityProvider genera identificadores únicos y el instante actual.
type IdentityProvider interface {
	NewID() string
	Now() time.Time
}
