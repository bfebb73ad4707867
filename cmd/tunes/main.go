package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hazadus/go-tunes/internal/config"
	"github.com/hazadus/go-tunes/internal/controller"
	"github.com/hazadus/go-tunes/internal/logger"
	"github.com/hazadus/go-tunes/internal/player"
	"github.com/hazadus/go-tunes/internal/playlist"
	"github.com/hazadus/go-tunes/internal/utils"
)

// Звуковой движок должен подходить контроллеру
var _ controller.Engine = (*player.Engine)(nil)

// Application хранит зависимости, общие для всех команд
type Application struct {
	Config *config.Config
	Logger *zap.Logger
	Store  *playlist.Store
}

// setup загружает конфигурацию и создает логгер и плейлист
func (app *Application) setup(configPath, musicDir string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	if musicDir != "" {
		dir, err := utils.ExpandHome(musicDir)
		if err != nil {
			return fmt.Errorf("неверная директория музыки: %w", err)
		}
		cfg.MusicDir = dir
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("ошибка инициализации логгера: %w", err)
	}

	app.Config = cfg
	app.Logger = log
	app.Store = playlist.NewStore(cfg.MusicDir, cfg.ScanExtensions, log)
	return nil
}

// close сбрасывает буферы логгера
func (app *Application) close() {
	if app.Logger != nil {
		_ = app.Logger.Sync()
	}
}

func main() {
	// Отменяем контекст по Ctrl+C и SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &Application{}
	defer app.close()

	rootCmd := app.createRootCommand(ctx)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		app.close()
		os.Exit(1)
	}
}
