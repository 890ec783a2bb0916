package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/autoservice/workshop/internal/config"
	"github.com/autoservice/workshop/internal/model"
	"github.com/autoservice/workshop/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApp_StartWithoutBackup(t *testing.T) {
	a := New(&config.Config{BackupDir: t.TempDir()}, zap.NewNop())

	require.NoError(t, a.Start(context.Background(), time.Now()))
	assert.Empty(t, a.Appointments.List())
	assert.Len(t, a.Catalog.Cars(), len(model.DefaultCars()))
}

func TestApp_StartRestoresBackup(t *testing.T) {
	now := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	dir := t.TempDir()

	source := New(&config.Config{BackupDir: dir}, zap.NewNop())
	_, err := source.Appointments.Book(service.BookingRequest{Date: "2024-01-21", Time: "10:00", CarBrand: "Audi", CarModel: "Q5"})
	require.NoError(t, err)
	path, err := source.Backups.Backup(context.Background(), now)
	require.NoError(t, err)

	restored := New(&config.Config{BackupDir: dir, RestoreFile: path}, zap.NewNop())
	require.NoError(t, restored.Start(context.Background(), now))
	require.Len(t, restored.Appointments.List(), 1)
	assert.Equal(t, "Q5", restored.Appointments.List()[0].CarModel)
}

func TestApp_StartWithBrokenBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1}`), 0o600))

	a := New(&config.Config{BackupDir: t.TempDir(), RestoreFile: path}, zap.NewNop())
	err := a.Start(context.Background(), time.Now())
	require.ErrorIs(t, err, model.ErrFormat)
	assert.Empty(t, a.Appointments.List())
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		env, level string
		debug      bool
	}{
		{"development", "", true},
		{"development", "error", false},
		{"production", "", false},
		{"production", "debug", true},
		{"production", "nonsense", false},
	}

	for _, tt := range tests {
		logger := NewLogger(tt.env, tt.level)
		require.NotNil(t, logger)
		assert.Equal(t, tt.debug, logger.Core().Enabled(zap.DebugLevel), "%s/%s", tt.env, tt.level)
	}
}
