package instrumented

import (
	"context"
	"errors"
	"time"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/davicafu/adsflow/internal/shared/infra/platform/metrics"
)

// Etiquetas de puerto en las métricas de adapters.
const (
	PortMedia   = "media"
	PortRecords = "records"
	PortEvents  = "events"
)

func result(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, domain.ErrConflictingKey):
		return metrics.ResultConflict
	default:
		return metrics.ResultError
	}
}

// MediaStore cuenta y cronometra las subidas de imágenes.
type MediaStore struct {
	next    domain.MediaStore
	adapter string
	m       *metrics.Metrics
}

var _ domain.MediaStore = (*MediaStore)(nil)

func NewMediaStore(next domain.MediaStore, adapter string, m *metrics.Metrics) *MediaStore {
	return &MediaStore{next: next, adapter: adapter, m: m}
}

func (s *MediaStore) Store(ctx context.Context, id, imageData string) (string, error) {
	start := time.Now()
	url, err := s.next.Store(ctx, id, imageData)
	s.m.ObserveAdapterCall(PortMedia, s.adapter, result(err), time.Since(start))
	return url, err
}

// RecordStore cuenta y cronometra la persistencia; los conflictos se etiquetan aparte.
type RecordStore struct {
	next    domain.RecordStore
	adapter string
	m       *metrics.Metrics
}

var _ domain.RecordStore = (*RecordStore)(nil)

func NewRecordStore(next domain.RecordStore, adapter string, m *metrics.Metrics) *RecordStore {
	return &RecordStore{next: next, adapter: adapter, m: m}
}

func (s *RecordStore) Put(ctx context.Context, collection string, ad *domain.Ad) error {
	start := time.Now()
	err := s.next.Put(ctx, collection, ad)
	s.m.ObserveAdapterCall(PortRecords, s.adapter, result(err), time.Since(start))
	return err
}

// EventPublisher cuenta las publicaciones, incluidos los fallos que el pipeline no propaga.
type EventPublisher struct {
	next    domain.EventPublisher
	adapter string
	m       *metrics.Metrics
}

var _ domain.EventPublisher = (*EventPublisher)(nil)

func NewEventPublisher(next domain.EventPublisher, adapter string, m *metrics.Metrics) *EventPublisher {
	return &EventPublisher{next: next, adapter: adapter, m: m}
}

func (p *EventPublisher) Publish(ctx context.Context, destination string, event interface{}) error {
	start := time.Now()
	err := p.next.Publish(ctx, destination, event)
	p.m.ObserveAdapterCall(PortEvents, p.adapter, result(err), time.Since(start))
	return err
}
