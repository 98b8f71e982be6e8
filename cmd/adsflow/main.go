package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adHttp "github.com/davicafu/adsflow/internal/ad/infra/inbound/http"
	"github.com/davicafu/adsflow/internal/bootstrap"
	config "github.com/davicafu/adsflow/internal/config"
	"github.com/davicafu/adsflow/pkg/logger"
	"github.com/davicafu/adsflow/pkg/utils"
)

// ---------------- Main ----------------
func main() {
	cfg := config.MustLoad()

	logger.Init(cfg.Logger.Level, cfg.Logger.Encoding) // inicializa zap
	log := logger.Logger()                             // obtiene logger estructurado
	defer log.Sync()                                   // flush buffers al salir

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ------------- Adapters + Servicio -------------
	app, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to build adapters", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("error closing adapters", zap.Error(err))
		}
	}()

	if app.Bus != nil {
		log.Info("⚡️ Usando bus de eventos en memoria (canales de Go)")
		listenLocalEvents(ctx, app, cfg.Ads.Topic, log)
	}

	// ---------------- HTTP ----------------
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), adHttp.CallerIdentity(), adHttp.RequestMetrics(app.Metrics), adHttp.RequestLogger(log.Named("http")))
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) { utils.SendNotFound(c, "route not found") })
	router.NoMethod(func(c *gin.Context) { utils.SendMethodNotAllowed(c, "method not allowed") })

	adHttp.RegisterAdRoutes(router, adHttp.NewAdHandler(app.Service, log.Named("http")))
	if cfg.Backends.MediaStore == config.MediaStoreFilesystem {
		if err := adHttp.RegisterMediaRoutes(router, cfg.Filesystem.BaseURL, cfg.Filesystem.Root); err != nil {
			log.Fatal("failed to register media routes", zap.Error(err))
		}
		log.Info("🖼️ Sirviendo imágenes locales", zap.String("base_url", cfg.Filesystem.BaseURL))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(app.Metrics.Handler()))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("🚀 Server running", zap.String("url", "http://localhost:"+cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("🛑 Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// listenLocalEvents registra los anuncios publicados en el bus en memoria.
func listenLocalEvents(ctx context.Context, app *bootstrap.App, topic string, log *zap.Logger) {
	events := app.Bus.Subscribe(topic, 100)
	log.Info("🎧 Iniciando listener en memoria para anuncios creados", zap.String("topic", topic))

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-events:
				if !ok {
					return
				}
				log.Debug("Ad announced", zap.ByteString("payload", payload))
			}
		}
	}()
}
