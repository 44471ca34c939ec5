package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/ecopuzzle-backend/internal"
	"github.com/rocketscienceinc/ecopuzzle-backend/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ecopuzzle",
	Short: "Environmental jigsaw puzzle backend",
	Long: `Serves the eco puzzle game over WebSocket and REST.

Running without a subcommand starts the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Path to the config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initialize config.
func initConfig() (*config.Config, error) {
	path := configPath
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(baseDir, path)
	}

	return config.Load(path)
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(conf.LogLevel)}))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	conf, err := initConfig()
	if err != nil {
		return err
	}

	return app.RunApp(initLogger(conf), conf)
}
