package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/adsflow/internal/shared/infra/platform/identity"
	"github.com/davicafu/adsflow/internal/shared/infra/platform/metrics"
	sharedUtils "github.com/davicafu/adsflow/internal/shared/infra/utils"
)

// CallerHeader es la cabecera de la que se toma el id del llamador.
const CallerHeader = "X-User-Id"

// CallerIdentity deja el id del llamador en el contexto de la petición. No autoriza nada.
func CallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := identity.WithCaller(c.Request.Context(), c.GetHeader(CallerHeader))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestMetrics cuenta y cronometra cada petición por ruta registrada.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := sharedUtils.Ternary(c.FullPath() != "", c.FullPath(), "unmatched")
		m.ObserveHTTP(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// RequestLogger escribe una línea por petición.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("caller", identity.CallerFromContext(c.Request.Context())),
		)
	}
}
