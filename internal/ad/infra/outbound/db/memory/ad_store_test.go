package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdStore_Put(t *testing.T) {
	store := NewAdStore()
	url := "https://b.s3.amazonaws.com/ads/a1.jpg"
	ad := &domain.Ad{ID: "a1", Title: "abcd", Price: 10, ImageURL: &url, CreatedAt: "2025-12-10T18:09:08.300Z"}

	require.NoError(t, store.Put(context.Background(), "ads", ad))

	// Mutar el original no afecta a lo guardado
	ad.Title = "otro"
	*ad.ImageURL = "otra"

	got, ok := store.Get("ads", "a1")
	require.True(t, ok)
	assert.Equal(t, "abcd", got.Title)
	assert.Equal(t, "https://b.s3.amazonaws.com/ads/a1.jpg", *got.ImageURL)
}

func TestAdStore_GetReturnsCopy(t *testing.T) {
	store := NewAdStore()
	url := "https://b.s3.amazonaws.com/ads/a1.jpg"
	require.NoError(t, store.Put(context.Background(), "ads", &domain.Ad{ID: "a1", ImageURL: &url}))

	got, ok := store.Get("ads", "a1")
	require.True(t, ok)
	*got.ImageURL = "otra"

	again, _ := store.Get("ads", "a1")
	assert.Equal(t, "https://b.s3.amazonaws.com/ads/a1.jpg", *again.ImageURL)
}

func TestAdStore_Conflict(t *testing.T) {
	store := NewAdStore()
	ad := &domain.Ad{ID: "a1", Title: "abcd", Price: 10}

	require.NoError(t, store.Put(context.Background(), "ads", ad))
	err := store.Put(context.Background(), "ads", ad)

	assert.ErrorIs(t, err, domain.ErrConflictingKey)
	// Mismo id en otra colección no choca
	assert.NoError(t, store.Put(context.Background(), "other", ad))
}

func TestAdStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewAdStore().Put(ctx, "ads", &domain.Ad{ID: "a1"})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestAdStore_ConcurrentPuts(t *testing.T) {
	store := NewAdStore()
	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			assert.NoError(t, store.Put(context.Background(), "ads", &domain.Ad{ID: id}))
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 6, store.Len("ads"))
}
