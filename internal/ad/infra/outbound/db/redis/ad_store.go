package redis

import (
	"context"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"github.com/davicafu/adsflow/internal/ad/domain"
	sharedUtils "github.com/davicafu/adsflow/internal/shared/infra/utils"
)

// AdStore guarda cada anuncio como JSON bajo {collection}:{id}. Sin expiración.
type AdStore struct {
	client goredis.Cmdable
}

var _ domain.RecordStore = (*AdStore)(nil)

func NewAdStore(client goredis.Cmdable) *AdStore {
	return &AdStore{client: client}
}

// Key devuelve la clave Redis de un anuncio.
func Key(collection, id string) string {
	return collection + ":" + id
}

// Put usa SETNX para que solo la primera escritura de un id tenga efecto.
func (s *AdStore) Put(ctx context.Context, collection string, ad *domain.Ad) error {
	data, err := sharedUtils.MarshalPayload(ad)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	created, err := s.client.SetNX(ctx, Key(collection, ad.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	if !created {
		return fmt.Errorf("%w: %s", domain.ErrConflictingKey, ad.ID)
	}
	return nil
}
