package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/davicafu/adsflow/internal/ad/domain"
	"github.com/davicafu/adsflow/internal/ad/infra/outbound/media"
)

// MediaStore es un adaptador outbound que guarda las imágenes en disco. Pensado para desarrollo local.
type MediaStore struct {
	root    string
	baseURL string
	mu      sync.Mutex
}

var _ domain.MediaStore = (*MediaStore)(nil)

// NewMediaStore es el constructor. baseURL se antepone a la clave para construir la URL pública.
func NewMediaStore(root, baseURL string) *MediaStore {
	return &MediaStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Store escribe la imagen decodificada en {root}/ads/{id}.jpg.
func (s *MediaStore) Store(ctx context.Context, id, imageData string) (string, error) {
	data, err := media.DecodeBase64(imageData)
	if err != nil {
		return "", err
	}

	key := media.ObjectKey(id)
	path := filepath.Join(s.root, filepath.FromSlash(key))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}

	return s.baseURL + "/" + key, nil
}
