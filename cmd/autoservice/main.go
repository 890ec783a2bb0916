package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/autoservice/workshop/internal/app"
	"github.com/autoservice/workshop/internal/config"
	"go.uber.org/zap"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)

	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Sugar().Infow("Starting autoservice",
		"environment", cfg.Environment,
		"backup_dir", cfg.BackupDir)

	// Время фиксируется один раз: все производные представления считаются от него
	now := time.Now()

	a := app.New(cfg, logger)
	if err := a.Start(ctx, now); err != nil {
		logger.Error("Failed to start", zap.Error(err))
		os.Exit(1)
	}

	clients := a.Clients.List("", now)
	summary, err := a.Backups.Summary(now)
	if err != nil {
		logger.Error("Failed to summarize backup", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Appointment book loaded",
		zap.Int("appointments", len(a.Appointments.List())),
		zap.Int("clients", len(clients)),
		zap.Int("backup_appointments", summary.Appointments),
		zap.Int("backup_size_bytes", summary.SizeBytes))
}
