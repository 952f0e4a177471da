package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"fulfillment/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"STORE_DRIVER", "DATA_FILE", "HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
	"DB_NAME", "DB_SSLMODE", "BACKUP_DIR", "BACKUP_SCHEDULE", "BACKUP_KEEP", "LOG_LEVEL",
	"LOG_FORMAT", "LOG_FILE",
}

// clearConfigEnv blanks every configuration variable for the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, cmd.StoreDriverFile, cfg.StoreDriver)
	assert.Equal(t, "pedidos_data.json", cfg.DataFile)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "backups", cfg.BackupDir)
	assert.Equal(t, 10, cfg.BackupKeep)
	assert.Empty(t, cfg.BackupSchedule)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearConfigEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"STORE_DRIVER=postgres\nDB_USER=app\nDB_NAME=orders\nDB_PASSWORD=secret\nBACKUP_KEEP=3\nBACKUP_SCHEDULE=0 0 2 * * *\n",
	), 0o600))

	// godotenv does not override variables that are already set, even empty ones,
	// so the blanked keys are unset for this test.
	for _, key := range configKeys {
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := cmd.LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, cmd.StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 3, cfg.BackupKeep)
	assert.Equal(t, "0 0 2 * * *", cfg.BackupSchedule)
	assert.Equal(t, "host=localhost port=5432 user=app password=secret dbname=orders sslmode=disable", cfg.DSN())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"STORE_DRIVER": "mongo"}},
		{"postgres without database", map[string]string{"STORE_DRIVER": "postgres"}},
		{"keep is not a number", map[string]string{"BACKUP_KEEP": "many"}},
		{"negative keep", map[string]string{"BACKUP_KEEP": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := cmd.LoadConfig("")
			assert.Error(t, err)
		})
	}
}
