package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/autoservice/workshop/internal/backup"
	"github.com/autoservice/workshop/internal/model"
	"github.com/autoservice/workshop/internal/repository"
	"go.uber.org/zap"
)

type BackupService struct {
	appointmentRepo *repository.AppointmentRepository
	backupDir       string
	logger          *zap.Logger
}

func NewBackupService(appointmentRepo *repository.AppointmentRepository, backupDir string, logger *zap.Logger) *BackupService {
	return &BackupService{
		appointmentRepo: appointmentRepo,
		backupDir:       backupDir,
		logger:          logger,
	}
}

// WriteTo пишет бэкап текущих и будущих записей в w
func (s *BackupService) WriteTo(ctx context.Context, w io.Writer, now time.Time) (int, error) {
	// Проверяем что операцию ещё не отменили
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	doc := backup.Export(s.appointmentRepo.List(), now)
	if err := backup.Encode(w, doc); err != nil {
		return 0, err
	}
	return len(doc.Appointments), nil
}

// Backup сохраняет бэкап в каталог бэкапов под стандартным именем
func (s *BackupService) Backup(ctx context.Context, now time.Time) (string, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	// Пишем во временный файл
	path := filepath.Join(s.backupDir, backup.FileName(now))
	tmp, err := os.CreateTemp(s.backupDir, ".backup-*.json")
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	defer os.Remove(tmp.Name())

	count, err := s.WriteTo(ctx, tmp, now)
	if err != nil {
		tmp.Close()
		return "", fmt.Errorf("write backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close backup file: %w", err)
	}

	// Переименовываем в итоговое имя
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("save backup file: %w", err)
	}

	s.logger.Info("Backup created",
		zap.String("path", path),
		zap.Int("appointments", count))

	return path, nil
}

// Restore читает бэкап и одной операцией заменяет текущие и будущие записи.
// При любой ошибке хранилище не меняется.
// После отмены ctx чтение r продолжается в фоне, пока r не вернёт ошибку
// или EOF: вызывающий код должен закрыть r сам.
func (s *BackupService) Restore(ctx context.Context, r io.Reader, now time.Time) (int, error) {
	// Читаем файл целиком до того, как трогать хранилище
	doc, err := readDocument(ctx, r)
	if err != nil {
		s.logger.Error("Restore failed", zap.Error(err))
		return 0, fmt.Errorf("restore backup: %w", err)
	}

	// Слияние идёт под блокировкой хранилища: записи, добавленные во время
	// чтения файла, не теряются
	total := 0
	s.appointmentRepo.Replace(func(current []model.Appointment) []model.Appointment {
		merged := backup.Import(current, *doc, now)
		total = len(merged)
		return merged
	})

	s.logger.Info("Backup restored",
		zap.Int("restored", len(doc.Appointments)),
		zap.Int("total", total),
		zap.String("backup_timestamp", doc.Timestamp))

	return len(doc.Appointments), nil
}

// RestoreFile восстанавливает записи из файла
func (s *BackupService) RestoreFile(ctx context.Context, path string, now time.Time) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Error("Failed to open backup file", zap.String("path", path), zap.Error(err))
		return 0, fmt.Errorf("restore backup: %w: %v", model.ErrFormat, err)
	}
	defer f.Close()

	return s.Restore(ctx, f, now)
}

// Summary показывает, что попадёт в бэкап прямо сейчас
func (s *BackupService) Summary(now time.Time) (backup.Summary, error) {
	return backup.Summarize(s.appointmentRepo.List(), now)
}

// readDocument читает документ в отдельной горутине, чтобы отмена контекста
// прерывала ожидание медленного источника
func readDocument(ctx context.Context, r io.Reader) (*backup.Document, error) {
	type result struct {
		doc *backup.Document
		err error
	}

	done := make(chan result, 1)
	go func() {
		doc, err := backup.Decode(r)
		done <- result{doc: doc, err: err}
	}()

	select {
	case res := <-done:
		return res.doc, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", model.ErrFormat, ctx.Err())
	}
}
