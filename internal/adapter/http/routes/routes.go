package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "ryft_bridge/docs"
	"ryft_bridge/internal/adapter/http/handlers"
	"ryft_bridge/internal/adapter/persistence/repository"
	"ryft_bridge/internal/adapter/uihost"
	"ryft_bridge/internal/config"
	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/infrastructure/database"
	"ryft_bridge/internal/infrastructure/events"
	"ryft_bridge/internal/infrastructure/payments"
	"ryft_bridge/internal/infrastructure/ryft"
	"ryft_bridge/internal/observability/metrics"
	"ryft_bridge/internal/usecase"
	"ryft_bridge/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router serves.
type Handlers struct {
	Channel *handlers.ChannelHandler
	Host    *handlers.HostHandler
	Results *handlers.PaymentResultHandler
}

// Run wires the bridge from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	h, closeFn, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           otelhttp.NewHandler(NewRouter(h, log), cfg.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTP.Addr), zap.String("platform", string(cfg.Bridge.Platform)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addChannelRoutes(v1, h.Channel)
	addHostRoutes(v1, h.Host)
	addResultRoutes(v1, h.Results)
	return router
}

func build(ctx context.Context, cfg config.Config, log *zap.Logger) (Handlers, func(), error) {
	host := uihost.New(log)

	var factory interfaces.IPaymentServiceFactory
	if cfg.Ryft.Mock {
		log.Info("payment gateway mock mode enabled")
		factory = &payments.MockGatewayFactory{Logger: log}
	} else {
		factory = &ryft.Factory{BaseURL: cfg.Ryft.BaseURL, Timeout: cfg.Ryft.Timeout, Logger: log}
	}

	// Journal and publisher stay untyped nil when disabled.
	var journal interfaces.IPaymentResultRepository
	if cfg.Journal.Enabled {
		ddb, err := database.NewDynamoDBClient(ctx, cfg.Journal.DynamoDB)
		if err != nil {
			return Handlers{}, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		journal = repository.NewPaymentResultDynamoRepository(ddb, cfg.Journal.Table)
		log.Info("result journal enabled", zap.String("table", cfg.Journal.Table))
	}

	var publisher interfaces.IResultPublisher
	closeFn := func() {}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.ResultsTopic, log)
		publisher = kp
		closeFn = func() {
			if err := kp.Close(); err != nil {
				log.Warn("close kafka publisher failed", zap.Error(err))
			}
		}
		log.Info("result events enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.ResultsTopic))
	} else {
		publisher = events.NewNoopPublisher(log)
	}

	bridgeMetrics, err := metrics.NewBridgeMetrics(otel.Meter(metrics.MeterName))
	if err != nil {
		return Handlers{}, nil, err
	}

	bridge := usecase.NewPaymentBridgeUseCase(usecase.PaymentBridgeDeps{
		Profile:   entities.ProfileFor(cfg.Bridge.Platform),
		Factory:   factory,
		Host:      host,
		Journal:   journal,
		Publisher: publisher,
		Metrics:   bridgeMetrics,
		Logger:    log,
	})

	results := usecase.NewPaymentResultUseCase(journal)

	return Handlers{
		Channel: handlers.NewChannelHandler(bridge, log),
		Host:    handlers.NewHostHandler(host, log),
		Results: handlers.NewPaymentResultHandler(results, log),
	}, closeFn, nil
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
