package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/planly/backend/api/handler"
	"github.com/planly/backend/internal/config"
	"github.com/planly/backend/internal/infrastructure/monitor"
	"github.com/planly/backend/internal/infrastructure/spool"
	sqliteInfra "github.com/planly/backend/internal/infrastructure/sqlite"
	"github.com/planly/backend/internal/router"
	"github.com/planly/backend/internal/services/audit"
	"github.com/planly/backend/internal/services/lifecycle"
	"github.com/planly/backend/pkg/httpcontext"
	"github.com/planly/backend/pkg/logger"
	sqliteRepo "github.com/planly/backend/repository/sqlite"
	activityUC "github.com/planly/backend/usecase/activity"
	catalogUC "github.com/planly/backend/usecase/catalog"
	searchUC "github.com/planly/backend/usecase/search"
	taskUC "github.com/planly/backend/usecase/task"
	viewUC "github.com/planly/backend/usecase/view"
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

	dbCfg := sqliteInfra.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	}

	if cfg.Migrations.Enabled {
		if err := sqliteInfra.RunMigrations(dbCfg, zapLogger); err != nil {
			zapLogger.Fatal("migrations failed", zap.Error(err))
		}
	}

	db, err := sqliteInfra.Open(appCtx, dbCfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("sqlite connection failed", zap.Error(err))
	}
	manager.Register("sqlite", func(ctx context.Context) error {
		sqliteInfra.Close(db, zapLogger)
		return nil
	})

	spoolStore, err := spool.Open(cfg.Spool.Path, "audit")
	if err != nil {
		zapLogger.Fatal("failed to open audit spool", zap.Error(err))
	}
	manager.Register("spool", func(ctx context.Context) error {
		return spoolStore.Close()
	})

	mon := monitor.New(db, spoolStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	listRepo := sqliteRepo.NewListRepository(db)
	labelRepo := sqliteRepo.NewLabelRepository(db)
	taskRepo := sqliteRepo.NewTaskRepository(db)
	reminderRepo := sqliteRepo.NewReminderRepository(db)
	attachmentRepo := sqliteRepo.NewAttachmentRepository(db)
	activityRepo := sqliteRepo.NewActivityRepository(db)

	auditLogger := audit.New(activityRepo, spoolStore, zapLogger)

	replayer := audit.NewReplayer(spoolStore, activityRepo, zapLogger, audit.ReplayConfig{
		Interval:   cfg.Spool.ReplayInterval,
		BatchSize:  cfg.Spool.BatchSize,
		MaxRetries: cfg.Spool.MaxRetries,
	})
	replayer.Start()
	manager.Register("audit_replayer", func(ctx context.Context) error {
		replayer.Stop(ctx)
		return nil
	})

	taskUseCase := taskUC.New(taskUC.Deps{
		Tasks:       taskRepo,
		Lists:       listRepo,
		Labels:      labelRepo,
		Reminders:   reminderRepo,
		Attachments: attachmentRepo,
		Activity:    activityRepo,
	}, auditLogger, zapLogger)
	catalogUseCase := catalogUC.New(listRepo, labelRepo, zapLogger)
	viewUseCase := viewUC.New(taskRepo, zapLogger)
	searchUseCase := searchUC.New(taskRepo, listRepo, searchUC.NewMatcher(cfg.Search.Matcher), cfg.Search.Limit, zapLogger)
	activityUseCase := activityUC.New(activityRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Catalog:  apiHandler.NewCatalogHandler(catalogUseCase, ctxAdapter, zapLogger),
		Task:     apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		View:     apiHandler.NewViewHandler(viewUseCase, searchUseCase, ctxAdapter, zapLogger),
		Activity: apiHandler.NewActivityHandler(activityUseCase, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)

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
