package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/go-redis/redis/v8"
	"github.com/nats-io/nats.go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/davicafu/adsflow/internal/ad/application"
	"github.com/davicafu/adsflow/internal/ad/domain"
	dynamoRepo "github.com/davicafu/adsflow/internal/ad/infra/outbound/db/dynamodb"
	memoryRepo "github.com/davicafu/adsflow/internal/ad/infra/outbound/db/memory"
	mongoRepo "github.com/davicafu/adsflow/internal/ad/infra/outbound/db/mongodb"
	postgresRepo "github.com/davicafu/adsflow/internal/ad/infra/outbound/db/postgre"
	redisRepo "github.com/davicafu/adsflow/internal/ad/infra/outbound/db/redis"
	sqliteRepo "github.com/davicafu/adsflow/internal/ad/infra/outbound/db/sqlite"
	"github.com/davicafu/adsflow/internal/ad/infra/outbound/instrumented"
	fsMedia "github.com/davicafu/adsflow/internal/ad/infra/outbound/media/filesystem"
	s3Media "github.com/davicafu/adsflow/internal/ad/infra/outbound/media/s3"
	"github.com/davicafu/adsflow/internal/config"
	sharedEvents "github.com/davicafu/adsflow/internal/shared/infra/events"
	"github.com/davicafu/adsflow/internal/shared/infra/platform/identity"
	"github.com/davicafu/adsflow/internal/shared/infra/platform/metrics"
	sharedUtils "github.com/davicafu/adsflow/internal/shared/infra/utils"

	// _ "github.com/mattn/go-sqlite3" // requires gcc
	_ "modernc.org/sqlite"
)

// App reúne el pipeline ya cableado con sus adapters. Se construye una vez por proceso.
type App struct {
	Service *application.AdService
	Metrics *metrics.Metrics
	// Bus solo existe con el publisher en memoria; permite suscribirse en local.
	Bus *sharedEvents.InMemoryEventBus

	closers []func() error
	log     *zap.Logger
}

// New construye los adapters elegidos en la configuración y el pipeline.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	app := &App{
		Metrics: metrics.New(cfg.ServiceName),
		log:     log,
	}

	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg == nil {
			c, err := loadAWSConfig(ctx, cfg)
			if err != nil {
				return aws.Config{}, err
			}
			awsCfg = &c
		}
		return *awsCfg, nil
	}

	media, err := app.buildMediaStore(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	records, err := app.buildRecordStore(ctx, cfg, loadAWS)
	if err != nil {
		app.Close()
		return nil, err
	}
	publisher, err := app.buildPublisher(cfg, loadAWS)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Service = application.NewAdService(
		instrumented.NewMediaStore(media, cfg.Backends.MediaStore, app.Metrics),
		instrumented.NewRecordStore(records, cfg.Backends.RecordStore, app.Metrics),
		instrumented.NewEventPublisher(publisher, cfg.Backends.EventPublisher, app.Metrics),
		identity.NewProvider(),
		application.Destinations{Table: cfg.Ads.TableName, Topic: cfg.Ads.Topic},
		log.Named("pipeline"),
	)

	log.Info("Adapters ready",
		zap.String("record_store", cfg.Backends.RecordStore),
		zap.String("media_store", cfg.Backends.MediaStore),
		zap.String("event_publisher", cfg.Backends.EventPublisher),
		zap.Bool("local_deployment", cfg.LocalDeployment),
	)
	return app, nil
}

// Close libera las conexiones en orden inverso a su apertura.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) onClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

func (a *App) retry(ctx context.Context, cfg *config.Config, what string, fn func() error) error {
	attempt := 0
	return sharedUtils.Retry(ctx, cfg.Startup.RetryAttempts, cfg.Startup.RetryDelay, func() error {
		attempt++
		err := fn()
		if err != nil {
			a.log.Warn("Backend not ready", zap.String("backend", what), zap.Int("attempt", attempt), zap.Error(err))
		}
		return err
	})
}

// ---------------- Media ----------------

func (a *App) buildMediaStore(cfg *config.Config) (domain.MediaStore, error) {
	switch cfg.Backends.MediaStore {
	case config.MediaStoreS3:
		return s3Media.NewMediaStore(s3Media.Options{
			Endpoint:      cfg.S3.Endpoint,
			Region:        cfg.AWS.Region,
			Bucket:        cfg.Ads.BucketName,
			AccessKey:     cfg.S3.AccessKey,
			SecretKey:     cfg.S3.SecretKey,
			UseSSL:        cfg.S3.UseSSL,
			PathStyle:     cfg.S3.PathStyle,
			PublicBaseURL: cfg.S3.PublicBaseURL,
		}, a.log.Named("s3"))
	case config.MediaStoreFilesystem:
		return fsMedia.NewMediaStore(cfg.Filesystem.Root, cfg.Filesystem.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown media store %q", cfg.Backends.MediaStore)
	}
}

// ---------------- Records ----------------

func (a *App) buildRecordStore(ctx context.Context, cfg *config.Config, loadAWS func() (aws.Config, error)) (domain.RecordStore, error) {
	switch cfg.Backends.RecordStore {
	case config.RecordStoreMemory:
		return memoryRepo.NewAdStore(), nil

	case config.RecordStoreDynamoDB:
		awsCfg, err := loadAWS()
		if err != nil {
			return nil, err
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.AWS.DynamoDBEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.AWS.DynamoDBEndpoint)
			}
		})
		return dynamoRepo.NewAdRepoDynamoDB(client), nil

	case config.RecordStoreMongoDB:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
		if err != nil {
			return nil, fmt.Errorf("failed to create mongo client: %w", err)
		}
		a.onClose(func() error { return client.Disconnect(context.Background()) })

		var repo *mongoRepo.AdRepoMongoDB
		err = a.retry(ctx, cfg, "mongodb", func() error {
			var err error
			repo, err = mongoRepo.NewAdRepoMongoDB(ctx, client, cfg.MongoDB.Database)
			return err
		})
		if err != nil {
			return nil, err
		}
		return repo, nil

	case config.RecordStorePostgres:
		return a.openSQL(ctx, cfg, "pgx", cfg.Postgres.DSN, func(db *sql.DB) (domain.RecordStore, error) {
			if err := postgresRepo.InitPostgres(ctx, db, cfg.Ads.TableName); err != nil {
				return nil, err
			}
			return postgresRepo.NewAdRepoPostgres(db), nil
		})

	case config.RecordStoreSQLite:
		return a.openSQL(ctx, cfg, "sqlite", cfg.SQLite.Path, func(db *sql.DB) (domain.RecordStore, error) {
			if err := sqliteRepo.InitSQLite(ctx, db, cfg.Ads.TableName); err != nil {
				return nil, err
			}
			return sqliteRepo.NewAdRepoSQLite(db), nil
		})

	case config.RecordStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.onClose(rdb.Close)
		if err := a.retry(ctx, cfg, "redis", func() error { return rdb.Ping(ctx).Err() }); err != nil {
			return nil, fmt.Errorf("redis not reachable: %w", err)
		}
		return redisRepo.NewAdStore(rdb), nil

	default:
		return nil, fmt.Errorf("unknown record store %q", cfg.Backends.RecordStore)
	}
}

func (a *App) openSQL(ctx context.Context, cfg *config.Config, driver, dsn string, build func(*sql.DB) (domain.RecordStore, error)) (domain.RecordStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", driver, err)
	}
	a.onClose(db.Close)

	if err := a.retry(ctx, cfg, driver, func() error { return db.PingContext(ctx) }); err != nil {
		return nil, fmt.Errorf("failed to ping %s: %w", driver, err)
	}
	return build(db)
}

// ---------------- Events ----------------

func (a *App) buildPublisher(cfg *config.Config, loadAWS func() (aws.Config, error)) (domain.EventPublisher, error) {
	log := a.log.Named("events")

	switch cfg.Backends.EventPublisher {
	case config.PublisherMemory:
		a.Bus = sharedEvents.NewInMemoryEventBus(log)
		a.onClose(func() error { a.Bus.Close(); return nil })
		return a.Bus, nil

	case config.PublisherSNS:
		awsCfg, err := loadAWS()
		if err != nil {
			return nil, err
		}
		client := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
			if cfg.AWS.SNSEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.AWS.SNSEndpoint)
			}
		})
		return sharedEvents.NewSNSPublisher(client, log), nil

	case config.PublisherKafka:
		writer := sharedEvents.NewKafkaWriter(cfg.Kafka.Brokers)
		a.onClose(writer.Close)
		return sharedEvents.NewKafkaPublisher(writer, log), nil

	case config.PublisherNATS:
		conn, err := nats.Connect(cfg.NATS.URL,
			nats.Name(cfg.NATS.ClientName),
			nats.Timeout(cfg.NATS.Timeout),
			nats.MaxReconnects(cfg.NATS.MaxReconnects),
			nats.ReconnectWait(cfg.NATS.ReconnectWait),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				log.Warn("NATS disconnected", zap.Error(err))
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				log.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		a.onClose(func() error { return conn.Drain() })
		return sharedEvents.NewNATSPublisher(conn, log), nil

	default:
		return nil, fmt.Errorf("unknown event publisher %q", cfg.Backends.EventPublisher)
	}
}

// ---------------- AWS ----------------

func loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.LocalDeployment {
		// Los emuladores locales aceptan cualquier credencial
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")))
	}

	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	awsCfg, err := awsconfig.LoadDefaultConfig(loadCtx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return awsCfg, nil
}
