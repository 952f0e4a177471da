package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"

	defaultDataFile   = "pedidos_data.json"
	defaultHTTPPort   = "8080"
	defaultBackupDir  = "backups"
	defaultBackupKeep = 10
)

var ErrUnknownStoreDriver = errors.New("unknown store driver")

type Config struct {
	StoreDriver string
	DataFile    string

	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	BackupDir      string
	BackupSchedule string
	BackupKeep     int

	LogLevel  string
	LogFormat string
	LogFile   string
}

// LoadConfig reads the configuration from the environment after loading
// envFile into it. A missing envFile is not an error; variables already set
// in the environment take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	keep, err := intVariable("BACKUP_KEEP", defaultBackupKeep)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		StoreDriver:    strings.ToLower(variable("STORE_DRIVER", StoreDriverFile)),
		DataFile:       variable("DATA_FILE", defaultDataFile),
		HTTPPort:       variable("HTTP_PORT", defaultHTTPPort),
		DBHost:         variable("DB_HOST", "localhost"),
		DBPort:         variable("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      variable("DB_SSLMODE", "disable"),
		BackupDir:      variable("BACKUP_DIR", defaultBackupDir),
		BackupSchedule: os.Getenv("BACKUP_SCHEDULE"),
		BackupKeep:     keep,
		LogLevel:       variable("LOG_LEVEL", "info"),
		LogFormat:      variable("LOG_FORMAT", "json"),
		LogFile:        os.Getenv("LOG_FILE"),
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverFile:
		if c.DataFile == "" {
			return errors.New("DATA_FILE is required for the file store")
		}
	case StoreDriverPostgres:
		if c.DBUser == "" || c.DBName == "" {
			return errors.New("DB_USER and DB_NAME are required for the postgres store")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, c.StoreDriver)
	}
	if c.BackupKeep < 0 {
		return errors.New("BACKUP_KEEP must not be negative")
	}
	return nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func variable(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", key, raw)
	}
	return v, nil
}
