package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/eliteprops/backend/api/handler"
	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/internal/config"
	"github.com/eliteprops/backend/internal/infrastructure/buffer"
	"github.com/eliteprops/backend/internal/infrastructure/monitor"
	pgInfra "github.com/eliteprops/backend/internal/infrastructure/postgres"
	redisInfra "github.com/eliteprops/backend/internal/infrastructure/redis"
	"github.com/eliteprops/backend/internal/middleware"
	"github.com/eliteprops/backend/internal/router"
	"github.com/eliteprops/backend/internal/services"
	"github.com/eliteprops/backend/internal/services/lifecycle"
	"github.com/eliteprops/backend/pkg/httpcontext"
	"github.com/eliteprops/backend/pkg/logger"
	"github.com/eliteprops/backend/repository/postgres"
	redisRepo "github.com/eliteprops/backend/repository/redis"
	authUC "github.com/eliteprops/backend/usecase/auth"
	catalogUC "github.com/eliteprops/backend/usecase/catalog"
	clientsUC "github.com/eliteprops/backend/usecase/clients"
	contentUC "github.com/eliteprops/backend/usecase/content"
	dashboardUC "github.com/eliteprops/backend/usecase/dashboard"
	receiptUC "github.com/eliteprops/backend/usecase/receipt"
	settingsUC "github.com/eliteprops/backend/usecase/settings"
	visitUC "github.com/eliteprops/backend/usecase/visit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "submissions")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	propertyRepo := postgres.NewPropertyRepository(pool)
	plotRepo := postgres.NewPlotRepository(pool)
	visitRepo := postgres.NewSiteVisitRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	credentialRepo := postgres.NewCredentialRepository(pool)
	contentRepo := postgres.NewContentRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Session.TTL)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		visitRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	company := domain.CompanyInfo{
		Name:    cfg.Company.Name,
		Contact: cfg.Company.Contact,
		Address: cfg.Company.Address,
	}

	authUseCase := authUC.New(profileRepo, credentialRepo, sessionRepo, authUC.Config{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.Session.TTL,
	}, zapLogger)
	catalogUseCase := catalogUC.New(propertyRepo, plotRepo, zapLogger)
	visitUseCase := visitUC.New(visitRepo, bufferBridge, zapLogger)
	receiptUseCase := receiptUC.New(receiptRepo, company, zapLogger)
	clientsUseCase := clientsUC.New(visitRepo, receiptRepo, zapLogger)
	contentUseCase := contentUC.New(contentRepo, zapLogger)
	settingsUseCase := settingsUC.New(profileRepo, credentialRepo, zapLogger)
	dashboardUseCase := dashboardUC.New(propertyRepo, plotRepo, visitRepo, receiptRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:      apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Property:  apiHandler.NewPropertyHandler(catalogUseCase, ctxAdapter, zapLogger),
		Plot:      apiHandler.NewPlotHandler(catalogUseCase, ctxAdapter, zapLogger),
		Visit:     apiHandler.NewVisitHandler(visitUseCase, ctxAdapter, zapLogger),
		Receipt:   apiHandler.NewReceiptHandler(receiptUseCase, ctxAdapter, zapLogger),
		Client:    apiHandler.NewClientHandler(clientsUseCase, ctxAdapter, zapLogger),
		Content:   apiHandler.NewContentHandler(contentUseCase, ctxAdapter, zapLogger),
		Settings:  apiHandler.NewSettingsHandler(settingsUseCase, ctxAdapter, zapLogger),
		Dashboard: apiHandler.NewDashboardHandler(dashboardUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	adminAuth := middleware.AdminAuth(authUseCase, ctxAdapter, zapLogger)
	r := router.New(handlers, adminAuth)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
