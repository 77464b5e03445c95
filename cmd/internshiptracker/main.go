package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"internship-tracker/internal/auth"
	"internship-tracker/internal/config"
	"internship-tracker/internal/handler"
	"internship-tracker/internal/logger"
	"internship-tracker/internal/repository"
	"internship-tracker/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog := logger.New(cfg.Env)
	defer func() { _ = zlog.Sync() }()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("open database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	internshipRepo := repository.NewInternshipRepository(db)
	workLogRepo := repository.NewWorkLogRepository(db)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(userRepo, tokens)
	internshipSvc := service.NewInternshipService(internshipRepo, workLogRepo)
	workLogSvc := service.NewWorkLogService(internshipRepo, workLogRepo, zlog)
	exportSvc := service.NewExportService(internshipRepo, workLogRepo)
	reconcilerSvc := service.NewReconcilerService(internshipRepo, workLogRepo, zlog)

	h := handler.New(zlog, validator.New(), authSvc, internshipSvc, workLogSvc, exportSvc, tokens)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.ReconcileInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.ReconcileInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := reconcilerSvc.ReconcileAll(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				zlog.Error("reconciliation sweep", zap.Error(err))
			}
		}); err != nil {
			zlog.Fatal("schedule reconciliation", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	go func() {
		zlog.Info("internship tracker listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
