// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/hazadus/go-tunes/internal/controller"
	"github.com/hazadus/go-tunes/internal/playlist"
	"github.com/hazadus/go-tunes/internal/tui/app"
)

// Engine аудиодвижок, который TUI закрывает при выходе
type Engine interface {
	controller.Engine
	Close() error
}

// App представляет основное TUI приложение
type App struct {
	store            *playlist.Store
	engine           Engine
	log              *zap.Logger
	importExtensions []string
	initialVolume    int
}

// NewApp создает новый экземпляр TUI приложения.
// Плейлист store должен быть уже просканирован.
func NewApp(store *playlist.Store, engine Engine, log *zap.Logger, importExtensions []string, initialVolume int) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		store:            store,
		engine:           engine,
		log:              log,
		importExtensions: importExtensions,
		initialVolume:    initialVolume,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	// Создаем модель для Bubble Tea и контроллер поверх нее
	model := app.NewMainModel(tuiApp.initialVolume)
	ctrl := controller.New(tuiApp.store, tuiApp.engine, model, tuiApp.log, tuiApp.importExtensions)
	model.SetActions(ctrl)

	if err := ctrl.Start(); err != nil {
		return err
	}
	if tuiApp.initialVolume != controller.DefaultVolume {
		ctrl.SetVolume(tuiApp.initialVolume)
	}

	tuiApp.log.Info("запуск интерфейса",
		zap.String("music_dir", tuiApp.store.Dir()),
		zap.Int("tracks", tuiApp.store.Len()))

	// Создаем программу Bubble Tea
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Запускаем программу
	_, err := p.Run()

	// Закрываем плеер после завершения программы
	ctrl.Stop()
	if closeErr := tuiApp.engine.Close(); closeErr != nil {
		tuiApp.log.Warn("ошибка закрытия движка", zap.Error(closeErr))
	}

	if err != nil {
		return fmt.Errorf("ошибка интерфейса: %w", err)
	}
	return nil
}
