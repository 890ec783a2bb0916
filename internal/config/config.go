package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultEnvironment = "development"
	defaultBackupDir   = "backups"
)

type Config struct {
	Environment string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	BackupDir   string `mapstructure:"BACKUP_DIR"`
	RestoreFile string `mapstructure:"RESTORE_FILE"` // Бэкап, загружаемый при старте
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv(), nil
}

// FromEnv читает конфигурацию из переменных окружения и подставляет значения по умолчанию
func FromEnv() *Config {
	cfg := &Config{
		Environment: os.Getenv("ENV"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		BackupDir:   os.Getenv("BACKUP_DIR"),
		RestoreFile: os.Getenv("RESTORE_FILE"),
	}

	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = defaultBackupDir
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
