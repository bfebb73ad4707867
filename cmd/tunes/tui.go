package main

import (
	"fmt"

	"github.com/hazadus/go-tunes/internal/player"
	"github.com/hazadus/go-tunes/internal/tui"
)

func (app *Application) launchTUI() error {
	if _, err := app.Store.Scan(); err != nil {
		return fmt.Errorf("ошибка сканирования плейлиста: %w", err)
	}

	// Создаем экземпляр TUI приложения
	tuiApp := tui.NewApp(
		app.Store,
		player.NewEngine(),
		app.Logger,
		app.Config.ImportExtensions,
		app.Config.InitialVolume(),
	)

	// Запускаем TUI
	return tuiApp.Run()
}
