package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"fulfillment/cmd"
	"fulfillment/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var (
	envFile  string
	dataFile string
	store    string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "fulfillment",
	Short:         "Purchase order fulfillment tracker",
	Long:          `Tracks purchase orders through the twelve stages from supplier offer to completion.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", "", "JSON data file (overrides DATA_FILE)")
	rootCmd.PersistentFlags().StringVar(&store, "store", "", "Store driver: file or postgres (overrides STORE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// application is what every command needs: the configuration, a logger and
// the composition root over the configured store.
type application struct {
	cfg    cmd.Config
	logger *slog.Logger
	root   *cmd.CompositionRoot

	logFile *os.File
}

// openApplication builds the application. Logs go to LOG_FILE when set and to
// fallback otherwise.
func openApplication(c *cobra.Command, fallback io.Writer) (*application, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	app := &application{cfg: cfg}

	out := fallback
	if cfg.LogFile != "" {
		app.logFile, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = app.logFile
	}

	app.logger = logging.New(logging.Options{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: out,
	})

	app.root, err = cmd.NewCompositionRoot(c.Context(), cfg, app.logger)
	if err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (a *application) Close() {
	if a.root != nil {
		if err := a.root.Close(); err != nil {
			a.logger.Error("close store", "error", err)
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func loadConfig() (cmd.Config, error) {
	for flag, key := range map[string]string{dataFile: "DATA_FILE", store: "STORE_DRIVER", logLevel: "LOG_LEVEL"} {
		if flag == "" {
			continue
		}
		if err := os.Setenv(key, flag); err != nil {
			return cmd.Config{}, err
		}
	}
	return cmd.LoadConfig(envFile)
}
