package media

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/davicafu/adsflow/internal/ad/domain"
)

// ContentType es el tipo declarado para toda imagen subida; no se inspecciona el contenido.
const ContentType = "image/jpeg"

// ObjectKey devuelve la clave de almacenamiento de la imagen de un Ad.
func ObjectKey(id string) string {
	return "ads/" + id + ".jpg"
}

// DecodeBase64 acepta base64 estándar con o sin padding.
func DecodeBase64(data string) ([]byte, error) {
	data = strings.TrimSpace(data)
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return decoded, nil
	}
	decoded, rawErr := base64.RawStdEncoding.DecodeString(data)
	if rawErr == nil {
		return decoded, nil
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrInvalidPayload, err)
}
