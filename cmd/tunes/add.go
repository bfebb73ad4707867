package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tunes/internal/playlist"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add [file path]...",
		Short: "Copy audio files into the music directory",
		Long:  `Copy one or more audio files into the music directory and add them to the playlist.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.addFiles(args)
		},
	}
}

// addFiles копирует файлы. Ошибка возвращается, только если не скопирован ни один файл.
func (app *Application) addFiles(paths []string) error {
	if _, err := app.Store.Scan(); err != nil {
		return fmt.Errorf("ошибка сканирования плейлиста: %w", err)
	}

	fmt.Printf("📥 Копируем файлы в %s:\n", app.Store.Dir())

	errs := app.Store.Add(paths)
	failed := make(map[string]bool, len(errs))
	for _, err := range errs {
		var copyErr *playlist.CopyError
		if errors.As(err, &copyErr) {
			failed[copyErr.Path] = true
		}
		fmt.Printf("⚠️  %v\n", err)
	}

	added := len(paths) - len(errs)
	if added == 0 {
		return fmt.Errorf("не удалось добавить ни одного файла")
	}

	for _, path := range paths {
		if failed[path] {
			continue
		}
		fmt.Printf("   + %s\n", playlist.DisplayName(path))
	}
	fmt.Printf("✅ Добавлено файлов: %d, всего в плейлисте: %d\n", added, app.Store.Len())
	return nil
}
