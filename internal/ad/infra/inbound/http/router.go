package http

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterAdRoutes registra las rutas HTTP para el dominio de Anuncios.
func RegisterAdRoutes(r gin.IRouter, handler *AdHandler) {
	ads := r.Group("/ads")
	{
		ads.POST("", handler.CreateAd) // Crear un nuevo anuncio
	}
}

// RegisterMediaRoutes sirve las imágenes guardadas en disco bajo la ruta de su URL base,
// de modo que las imageUrl devueltas por el store de filesystem resuelven.
func RegisterMediaRoutes(r gin.IRouter, baseURL, root string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid media base url %q: %w", baseURL, err)
	}
	path := strings.TrimRight(u.Path, "/")
	if path == "" {
		return fmt.Errorf("media base url %q has no path to serve images from", baseURL)
	}
	r.Static(path, root)
	return nil
}
