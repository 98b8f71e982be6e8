package application

import (
	"context"
	"fmt"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/davicafu/adsflow/internal/shared/infra/platform/identity"
	"go.uber.org/zap"
)

// Destinations agrupa los nombres de la tabla y del topic donde acaba cada Ad.
type Destinations struct {
	Table string
	Topic string
}

// AdService orquesta la creación de anuncios: valida, asigna identidad,
// sube la imagen si la hay, persiste y anuncia. No guarda estado entre llamadas.
type AdService struct {
	media    domain.MediaStore
	records  domain.RecordStore
	events   domain.EventPublisher
	identity domain.IdentityProvider
	dest     Destinations
	log      *zap.Logger
}

// NewAdService es el constructor del pipeline de creación.
func NewAdService(
	media domain.MediaStore,
	records domain.RecordStore,
	events domain.EventPublisher,
	identity domain.IdentityProvider,
	dest Destinations,
	log *zap.Logger,
) *AdService {
	return &AdService{
		media:    media,
		records:  records,
		events:   events,
		identity: identity,
		dest:     dest,
		log:      log,
	}
}

// CreateAd ejecuta el pipeline completo sobre el cuerpo crudo de la petición.
// Los pasos van en orden fijo y el primer fallo corta el resto. Un fallo al publicar
// no deshace nada: el Ad ya está persistido y se devuelve sin error.
func (s *AdService) CreateAd(ctx context.Context, body []byte) (*domain.Ad, error) {
	caller := zap.String("caller", identity.CallerFromContext(ctx))

	req, err := ParseAdRequest(body)
	if err != nil {
		s.log.Warn("Ad request rejected", caller, zap.Error(err))
		return nil, err
	}

	// Identidad asignada una sola vez, antes de cualquier llamada a un adapter.
	ad := &domain.Ad{
		ID:        s.identity.NewID(),
		Title:     req.Title,
		Price:     req.Price,
		CreatedAt: domain.FormatTimestamp(s.identity.Now()),
	}
	log := s.log.With(zap.String("ad_id", ad.ID), caller)

	if req.HasImage() {
		url, err := s.media.Store(ctx, ad.ID, req.ImageData)
		if err != nil {
			log.Error("Failed to upload ad image", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", domain.ErrMediaUploadFailed, err)
		}
		ad.ImageURL = &url
	}

	if err := s.records.Put(ctx, s.dest.Table, ad); err != nil {
		log.Error("Failed to persist ad", zap.String("table", s.dest.Table), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err)
	}

	// El Ad ya está confirmado: la publicación no se cancela si el cliente se va.
	if err := s.events.Publish(context.WithoutCancel(ctx), s.dest.Topic, ad); err != nil {
		log.Error("Ad persisted but announcement failed",
			zap.String("topic", s.dest.Topic),
			zap.String("event_type", domain.AdCreated),
			zap.Error(fmt.Errorf("%w: %w", domain.ErrPublishFailed, err)),
		)
	}

	log.Info("Ad created", zap.Bool("has_image", ad.ImageURL != nil))
	return ad, nil
}
