package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/stretchr/testify/mock"
)

// MockMediaStore simula el almacenamiento de imágenes
type MockMediaStore struct {
	mock.Mock
}

var _ domain.MediaStore = (*MockMediaStore)(nil)

func (m *MockMediaStore) Store(ctx context.Context, id, imageData string) (string, error) {
	args := m.Called(ctx, id, imageData)
	return args.String(0), args.Error(1)
}

// MockRecordStore simula la persistencia de anuncios
type MockRecordStore struct {
	mock.Mock
}

var _ domain.RecordStore = (*MockRecordStore)(nil)

func (m *MockRecordStore) Put(ctx context.Context, collection string, ad *domain.Ad) error {
	args := m.Called(ctx, collection, ad)
	return args.Error(0)
}

// MockPublisher simula un publisher
type MockPublisher struct {
	mock.Mock
}

var _ domain.EventPublisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, destination string, event interface{}) error {
	args := m.Called(ctx, destination, event)
	return args.Error(0)
}

// SequenceIdentity entrega ids en orden y un reloj que avanza un milisegundo por llamada.
type SequenceIdentity struct {
	IDs   []string
	Start time.Time

	mu    sync.Mutex
	next  int
	ticks int
}

var _ domain.IdentityProvider = (*SequenceIdentity)(nil)

func (s *SequenceIdentity) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.IDs[s.next%len(s.IDs)]
	s.next++
	return id
}

func (s *SequenceIdentity) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := s.Start.Add(time.Duration(s.ticks) * time.Millisecond)
	s.ticks++
	return at
}
