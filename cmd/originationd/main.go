package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bribank/origination/internal/application/usecase"
	"github.com/bribank/origination/internal/domain/service"
	"github.com/bribank/origination/internal/infrastructure/config"
	"github.com/bribank/origination/internal/infrastructure/export"
	"github.com/bribank/origination/internal/infrastructure/messaging"
	pgRepo "github.com/bribank/origination/internal/infrastructure/persistence/postgres"
	"github.com/bribank/origination/internal/presentation/rest"
	"github.com/bribank/origination/pkg/auth"
	pkgkafka "github.com/bribank/origination/pkg/kafka"
	"github.com/bribank/origination/pkg/observability"
	pkgpostgres "github.com/bribank/origination/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slog.SetDefault(logger)

	logger.Info("starting origination-service", "http_port", cfg.HTTPPort)

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without them", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(context.Background()) }()
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Infrastructure adapters.
	requestRepo := pgRepo.NewMortgageRequestRepo(pool)
	scheduleRepo := pgRepo.NewScheduleRepo(pool)
	personRepo := pgRepo.NewPersonRepo(pool)
	documentStore := pgRepo.NewDocumentStore(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, logger)

	exporter := export.NewScheduleExporter()
	bundler := export.NewDocumentBundle()
	lifecycle := service.NewLifecycle()

	// Use cases.
	useCases := rest.UseCases{
		CreateRequest:     usecase.NewCreateRequestUseCase(requestRepo, personRepo, publisher),
		UpdateTerms:       usecase.NewUpdateTermsUseCase(requestRepo, scheduleRepo, publisher),
		SubmitRequest:     usecase.NewSubmitRequestUseCase(requestRepo, lifecycle, publisher),
		ForwardValidation: usecase.NewForwardToValidationUseCase(requestRepo, documentStore, lifecycle, publisher),
		RejectRequest:     usecase.NewRejectRequestUseCase(requestRepo, lifecycle, publisher),
		ValidateRequest:   usecase.NewValidateRequestUseCase(requestRepo, lifecycle, publisher),
		DeleteRequest:     usecase.NewDeleteRequestUseCase(requestRepo, lifecycle, publisher),
		RestoreRequest:    usecase.NewRestoreRequestUseCase(requestRepo, publisher),
		GetRequest:        usecase.NewGetRequestUseCase(requestRepo),
		SearchRequests:    usecase.NewSearchRequestsUseCase(requestRepo),
		GenerateSchedule:  usecase.NewGenerateScheduleUseCase(requestRepo, scheduleRepo, publisher),
		ExportSchedule:    usecase.NewExportScheduleUseCase(requestRepo, scheduleRepo, exporter),
		RegisterPerson:    usecase.NewRegisterPersonUseCase(personRepo, publisher),
		SearchPersons:     usecase.NewSearchPersonsUseCase(personRepo),
		UploadDocument:    usecase.NewUploadDocumentUseCase(requestRepo, documentStore, publisher),
		ListDocuments:     usecase.NewListDocumentsUseCase(requestRepo, documentStore),
		DownloadDocument:  usecase.NewDownloadDocumentUseCase(requestRepo, documentStore),
		DocumentBundle:    usecase.NewDownloadDocumentBundleUseCase(requestRepo, documentStore, bundler),
	}

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	router := rest.NewRouter(rest.ServerDeps{
		Handler:        rest.NewHandler(useCases),
		JWTService:     jwtService,
		Pool:           pool,
		MetricsHandler: metricsHandler,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
