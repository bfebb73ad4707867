package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-tunes/internal/controller"
	"github.com/hazadus/go-tunes/internal/player"
)

// volumeStep шаг изменения громкости в консоли
const volumeStep = 5

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "play [N]",
		Short: "Play the playlist in the console",
		Long:  `Play the playlist starting from track N (from 'tunes list') or from the first track.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			index := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("неверный номер трека: %s", args[0])
				}
				index = n - 1
			}
			return app.playFrom(ctx, index)
		},
	}
}

// enableRawMode включает режим raw для терминала (без буферизации и echo)
func enableRawMode() {
	cmd := exec.Command("stty", "-echo", "-icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run() // Игнорируем ошибку, так как это не критично для работы плеера
}

// disableRawMode восстанавливает нормальный режим терминала
func disableRawMode() {
	cmd := exec.Command("stty", "echo", "icanon")
	cmd.Stdin = os.Stdin
	_ = cmd.Run() // Игнорируем ошибку, так как это не критично для работы плеера
}

// readSingleChar читает одиночный символ без ожидания Enter
func readSingleChar() (byte, error) {
	buffer := make([]byte, 1)
	_, err := os.Stdin.Read(buffer)
	return buffer[0], err
}

func (app *Application) playFrom(ctx context.Context, index int) error {
	if _, err := app.Store.Scan(); err != nil {
		return fmt.Errorf("ошибка сканирования плейлиста: %w", err)
	}
	if app.Store.Len() == 0 {
		return controller.ErrEmptyPlaylist
	}
	if index >= app.Store.Len() {
		return fmt.Errorf("трек с номером %d не найден", index+1)
	}

	engine := player.NewEngine()
	defer engine.Close()

	view := newConsoleView(os.Stdout, index)
	ctrl := controller.New(app.Store, engine, view, app.Logger, app.Config.ImportExtensions)
	if err := ctrl.Start(); err != nil {
		return err
	}
	if volume := app.Config.InitialVolume(); volume != controller.DefaultVolume {
		ctrl.SetVolume(volume)
	}

	fmt.Printf("🎮 Управление:\n")
	fmt.Printf("   [Пробел] - пауза/воспроизведение\n")
	fmt.Printf("   [n] / [b] - следующий/предыдущий трек\n")
	fmt.Printf("   [s] - стоп, [+] / [-] - громкость\n")
	fmt.Printf("   [q] - выход\n")
	fmt.Println()

	// Ошибка уже выведена через ShowWarning
	_ = ctrl.PlaySelected()

	// Включаем raw режим для чтения одиночных клавиш
	enableRawMode()
	defer disableRawMode()

	// Клавиши читаются в горутине, а команды контроллеру подаются только из этого цикла
	done := make(chan struct{})
	defer close(done)
	keys := readKeys(readSingleChar, done)

	for {
		select {
		case char, ok := <-keys:
			if !ok || handleKey(ctrl, char) {
				ctrl.Stop()
				return nil
			}
		case <-ctx.Done():
			fmt.Println("\n⏹️  Воспроизведение остановлено пользователем")
			ctrl.Stop()
			return nil
		}
	}
}

// readKeys читает клавиши в фоне, пока не закрыт done.
// Канал закрывается при ошибке чтения или после закрытия done.
func readKeys(read func() (byte, error), done <-chan struct{}) <-chan byte {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		for {
			char, err := read()
			if err != nil {
				return
			}
			select {
			case keys <- char:
			case <-done:
				return
			}
		}
	}()
	return keys
}

// handleKey передает нажатую клавишу контроллеру и возвращает true для выхода
func handleKey(ctrl *controller.Controller, char byte) bool {
	switch char {
	case ' ':
		_ = ctrl.PlayOrPause()
	case 'n':
		_ = ctrl.Next()
	case 'b':
		_ = ctrl.Previous()
	case 's':
		ctrl.Stop()
	case '+', '=':
		ctrl.SetVolume(ctrl.State().Volume + volumeStep)
		fmt.Printf("🔊 Громкость: %d%%\n", ctrl.State().Volume)
	case '-':
		ctrl.SetVolume(ctrl.State().Volume - volumeStep)
		fmt.Printf("🔊 Громкость: %d%%\n", ctrl.State().Volume)
	case 'q':
		return true
	}
	return false
}
