package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/davicafu/adsflow/internal/ad/domain"
)

// AdStore guarda los anuncios en memoria, por colección. Para modo local y tests.
type AdStore struct {
	collections map[string]map[string]domain.Ad
	mu          sync.RWMutex
}

var _ domain.RecordStore = (*AdStore)(nil)

func NewAdStore() *AdStore {
	return &AdStore{collections: make(map[string]map[string]domain.Ad)}
}

func (s *AdStore) Put(ctx context.Context, collection string, ad *domain.Ad) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.collections[collection]
	if !ok {
		records = make(map[string]domain.Ad)
		s.collections[collection] = records
	}
	if _, exists := records[ad.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrConflictingKey, ad.ID)
	}

	// Copia para que el llamador no pueda mutar lo guardado
	stored := *ad
	if ad.ImageURL != nil {
		url := *ad.ImageURL
		stored.ImageURL = &url
	}
	records[ad.ID] = stored
	return nil
}

// Get devuelve una copia del anuncio guardado.
func (s *AdStore) Get(collection, id string) (*domain.Ad, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ad, ok := s.collections[collection][id]
	if !ok {
		return nil, false
	}
	if ad.ImageURL != nil {
		url := *ad.ImageURL
		ad.ImageURL = &url
	}
	return &ad, true
}

// Len devuelve cuántos anuncios hay en la colección.
func (s *AdStore) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}
