package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaStore_Store(t *testing.T) {
	root := t.TempDir()
	store := NewMediaStore(root, "http://localhost:8080/media/")

	url, err := store.Store(context.Background(), "a1", "aGVsbG8=")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/ads/a1.jpg", url)

	data, err := os.ReadFile(filepath.Join(root, "ads", "a1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestMediaStore_OverwritesSameID(t *testing.T) {
	root := t.TempDir()
	store := NewMediaStore(root, "http://localhost")

	_, err := store.Store(context.Background(), "a1", "aGVsbG8=")
	require.NoError(t, err)
	_, err = store.Store(context.Background(), "a1", "Ynll")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "ads", "a1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("bye"), data)
}

func TestMediaStore_InvalidPayload(t *testing.T) {
	root := t.TempDir()
	store := NewMediaStore(root, "http://localhost")

	_, err := store.Store(context.Background(), "a1", "***")

	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	_, statErr := os.Stat(filepath.Join(root, "ads", "a1.jpg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMediaStore_UnwritableRoot(t *testing.T) {
	// Un fichero en lugar de directorio hace fallar MkdirAll
	root := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))
	store := NewMediaStore(root, "http://localhost")

	_, err := store.Store(context.Background(), "a1", "aGVsbG8=")

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
