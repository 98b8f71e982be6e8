package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	adLambda "github.com/davicafu/adsflow/internal/ad/infra/inbound/lambda"
	"github.com/davicafu/adsflow/internal/bootstrap"
	config "github.com/davicafu/adsflow/internal/config"
	"github.com/davicafu/adsflow/pkg/logger"
)

// Los adapters se construyen una vez por contenedor y se reutilizan entre invocaciones.
func main() {
	cfg := config.MustLoad()

	logger.Init(cfg.Logger.Level, cfg.Logger.Encoding)
	log := logger.Logger()
	defer log.Sync()

	app, err := bootstrap.New(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("failed to build adapters", zap.Error(err))
	}
	defer app.Close()

	handler := adLambda.NewHandler(app.Service, log.Named("lambda"))
	lambda.Start(handler.Handle)
}
