package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hazadus/go-tunes/internal/player"
	"github.com/hazadus/go-tunes/internal/playlist"
	"github.com/hazadus/go-tunes/internal/utils"
)

const listNameWidth = 50

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracks in the music directory",
		Long:  `Scan the music directory and display the playlist with track indexes.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.listTracks()
		},
	}
}

func (app *Application) listTracks() error {
	tracks, err := app.Store.Scan()
	if err != nil {
		return fmt.Errorf("ошибка сканирования плейлиста: %w", err)
	}

	if len(tracks) == 0 {
		fmt.Printf("📚 Плейлист пуст (%s). Добавьте треки с помощью команды 'add'.\n", app.Store.Dir())
		return nil
	}

	fmt.Printf("📚 Найдено треков: %d (%s)\n\n", len(tracks), app.Store.Dir())

	// Выводим заголовок таблицы
	fmt.Printf("%4s %-*s %12s %10s\n", "N", listNameWidth, "Файл", "Длительность", "Размер")
	fmt.Println(strings.Repeat("-", listNameWidth+30))

	for i, track := range tracks {
		// Файл, который не удалось декодировать, все равно остается в плейлисте
		duration, size := "N/A", "N/A"
		if info, err := player.Probe(track); err == nil {
			duration = utils.FormatDuration(info.Duration)
			size = humanize.Bytes(uint64(info.Size))
		} else {
			app.Logger.Debug("не удалось прочитать трек", zap.String("path", track), zap.Error(err))
		}

		name := utils.TruncateString(playlist.DisplayName(track), listNameWidth)
		fmt.Printf("%3d. %-*s %12s %10s\n", i+1, listNameWidth, name, duration, size)
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'tunes play [N]' для воспроизведения трека")
	return nil
}
