package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"catalog-service/internal/adapters/filesource"
	"catalog-service/internal/adapters/kvstore"
	logger_adapter "catalog-service/internal/adapters/logger"
	postgres_adapter "catalog-service/internal/adapters/postgres"
	rabbitmq_adapter "catalog-service/internal/adapters/rabbitmq"
	"catalog-service/internal/adapters/rest"
	"catalog-service/internal/configs"
	"catalog-service/internal/constants"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/usecase"
	"catalog-service/internal/validation"
	fluentlogger "catalog-service/pkg/fluent_logger"
	"catalog-service/pkg/postgres"
	"catalog-service/pkg/rabbitmq/rabbitmq_common"
	"catalog-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 15 * time.Second

// App – структура приложения
type App struct {
	config        *configs.AppConfig
	dbPool        *pgxpool.Pool
	connManager   *rabbitmq_common.ConnectionManager
	eventProducer *rabbitmq_producer.Publisher
	fluentClient  *fluent.Fluent
	apiServer     *rest.Server
	logger        port.LoggerPort
}

// NewApp - composition root: здесь создаются и связываются все зависимости.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{config: appConfig}

	baseLogger, err := app.initLoggers()
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	app.logger = appLogger

	propertySource, err := app.initPropertySource(baseLogger)
	if err != nil {
		app.closeResources()
		return nil, err
	}

	contactPublisher, err := app.initContactPublisher(baseLogger)
	if err != nil {
		app.closeResources()
		return nil, err
	}

	contactValidator, err := validation.NewContactValidator()
	if err != nil {
		appLogger.Error("Failed to create contact validator", err, nil)
		app.closeResources()
		return nil, fmt.Errorf("failed to create contact validator: %w", err)
	}

	selectionStore := kvstore.NewSelectionStore(kvstore.StoreConfig{
		MaxVisitors: appConfig.Selection.MaxVisitors,
		VisitorTTL:  appConfig.Selection.VisitorTTL,
	})
	appLogger.Info("All outgoing adapters initialized.", nil)

	searchCatalogUC := usecase.NewSearchCatalogUseCase(propertySource)
	getDictionariesUC := usecase.NewGetDictionariesUseCase()
	toggleFavoriteUC := usecase.NewToggleFavoriteUseCase(selectionStore, propertySource)
	getSelectionUC := usecase.NewGetSelectionUseCase(selectionStore)
	addToComparisonUC := usecase.NewAddToComparisonUseCase(selectionStore, propertySource)
	removeFromComparisonUC := usecase.NewRemoveFromComparisonUseCase(selectionStore)

	submitContactRequestUC := usecase.NewSubmitContactRequestUseCase(contactValidator, contactPublisher)
	appLogger.Info("All use cases initialized.", nil)

	app.apiServer = rest.NewServer(
		appConfig.HTTP.Port,
		appConfig.HTTP.CORSAllowedOrigins,
		rest.NewCatalogHandler(searchCatalogUC, getDictionariesUC),
		rest.NewSelectionHandler(toggleFavoriteUC, getSelectionUC, addToComparisonUC, removeFromComparisonUC),
		rest.NewContactHandler(submitContactRequestUC),
		baseLogger.WithFields(port.Fields{"component": "rest"}),
	)
	appLogger.Info("REST server initialized.", nil)

	return app, nil
}

func (a *App) initLoggers() (port.LoggerPort, error) {
	cfg := a.config
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(cfg.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if cfg.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(cfg.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		a.fluentClient = fluentClient
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": cfg.AppName})
	baseLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": cfg.FluentBit.Enabled,
	})
	return baseLogger, nil
}

// initPropertySource выбирает источник каталога: PostgreSQL, если задан DATABASE_URL, иначе JSON-файл
func (a *App) initPropertySource(baseLogger port.LoggerPort) (port.PropertySourcePort, error) {
	logger := baseLogger.WithFields(port.Fields{"component": "app"})

	if a.config.Database.URL == "" {
		source, err := filesource.NewPropertyFileSource(a.config.Catalog.FilePath)
		if err != nil {
			logger.Error("Failed to create catalog file source", err, nil)
			return nil, fmt.Errorf("failed to create catalog file source: %w", err)
		}
		logger.Info("Catalog is served from file", port.Fields{"path": a.config.Catalog.FilePath})
		return source, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: a.config.Database.URL})
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	a.dbPool = dbPool
	logger.Info("Successfully connected to PostgreSQL pool!", nil)

	source, err := postgres_adapter.NewPropertySourceAdapter(dbPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres property source: %w", err)
	}
	return source, nil
}

// initContactPublisher возвращает nil без ошибки, если RabbitMQ не настроен
func (a *App) initContactPublisher(baseLogger port.LoggerPort) (port.ContactRequestPublisherPort, error) {
	logger := baseLogger.WithFields(port.Fields{"component": "app"})

	if a.config.RabbitMQ.URL == "" {
		logger.Warn("RABBITMQ_URL is not set, contact requests are disabled", nil)
		return nil, nil
	}

	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, connManagerBridge)
	if err != nil {
		logger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"}))
	eventProducer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             constants.SiteExchange,
		ExchangeType:             constants.SiteExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   producerBridge,
	}, connManager)
	if err != nil {
		logger.Error("Failed to create event producer", err, nil)
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.eventProducer = eventProducer
	logger.Info("RabbitMQ Event Producer initialized.", nil)

	publisher, err := rabbitmq_adapter.NewContactRequestQueueAdapter(eventProducer, constants.RoutingKeyContactRequests)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

// Run запускает HTTP-сервер и ждет сигнала завершения.
func (a *App) Run() error {
	defer a.closeResources()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", runErr, nil)
	}

	return runErr
}

// closeResources закрывает все, что успело создаться; порядок обратный созданию
func (a *App) closeResources() {
	if a.logger != nil {
		a.logger.Info("Shutdown sequence initiated...", nil)
	}

	if a.apiServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}
		cancel()
	}

	if a.eventProducer != nil {
		if err := a.eventProducer.Close(); err != nil {
			a.logger.Error("Error closing event producer", err, nil)
		}
	}

	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection manager", err, nil)
		}
	}

	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	if a.logger != nil {
		a.logger.Info("Application shut down gracefully.", nil)
	}

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен, поэтому только stdout
			log.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
