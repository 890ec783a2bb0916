package app

import (
	"context"
	"fmt"
	"time"

	"github.com/autoservice/workshop/internal/config"
	"github.com/autoservice/workshop/internal/model"
	"github.com/autoservice/workshop/internal/repository"
	"github.com/autoservice/workshop/internal/service"
	"go.uber.org/zap"
)

// App связывает хранилища и сервисы. Интерфейс пользователя работает
// только через сервисы и никогда не держит собственную копию записей.
type App struct {
	Appointments *service.AppointmentService
	Calendar     *service.CalendarService
	Clients      *service.ClientService
	Backups      *service.BackupService
	Catalog      *service.CatalogService

	cfg    *config.Config
	logger *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *App {
	appointmentRepo := repository.NewAppointmentRepository()
	carRepo := repository.NewCarRepository(model.DefaultCars())

	return &App{
		Appointments: service.NewAppointmentService(appointmentRepo, logger),
		Calendar:     service.NewCalendarService(appointmentRepo, logger),
		Clients:      service.NewClientService(appointmentRepo, logger),
		Backups:      service.NewBackupService(appointmentRepo, cfg.BackupDir, logger),
		Catalog:      service.NewCatalogService(carRepo, logger),
		cfg:          cfg,
		logger:       logger,
	}
}

// Start загружает стартовый бэкап, если он указан в конфигурации
func (a *App) Start(ctx context.Context, now time.Time) error {
	if a.cfg.RestoreFile == "" {
		a.logger.Info("Starting with an empty appointment book")
		return nil
	}

	restored, err := a.Backups.RestoreFile(ctx, a.cfg.RestoreFile, now)
	if err != nil {
		return fmt.Errorf("load startup backup: %w", err)
	}

	a.logger.Info("Startup backup loaded",
		zap.String("path", a.cfg.RestoreFile),
		zap.Int("appointments", restored))
	return nil
}
