package main

import (
	"fmt"
	"io"

	"github.com/hazadus/go-tunes/internal/controller"
)

// consoleView выводит состояние плеера построчно в терминал
type consoleView struct {
	out      io.Writer
	selected int
	playing  bool
}

var _ controller.View = (*consoleView)(nil)

func newConsoleView(out io.Writer, selected int) *consoleView {
	return &consoleView{out: out, selected: selected}
}

func (v *consoleView) DisplayTrackList(names []string) {
	for i, name := range names {
		fmt.Fprintf(v.out, "%3d. %s\n", i+1, name)
	}
	fmt.Fprintln(v.out)
}

func (v *consoleView) SelectedIndex() int {
	return v.selected
}

func (v *consoleView) SetNowPlaying(name string, playing bool) {
	fmt.Fprintf(v.out, "\r\033[K")
	switch {
	case name == "":
		fmt.Fprintf(v.out, "⏹️  Остановлено\n")
	case playing:
		fmt.Fprintf(v.out, "▶️  Сейчас играет: %s\n", name)
	default:
		fmt.Fprintf(v.out, "⏸️  Пауза: %s\n", name)
	}
}

func (v *consoleView) SetTransportIcon(playing bool) {
	v.playing = playing
}

// PromptFileSelection не поддерживается в консоли: выбор сразу отменяется
func (v *consoleView) PromptFileSelection(_ []string, done func(paths []string)) {
	fmt.Fprintln(v.out, "💡 Используйте 'tunes add [file path]...' для добавления файлов")
	done(nil)
}

func (v *consoleView) ShowWarning(message string) {
	fmt.Fprintf(v.out, "⚠️  %s\n", message)
}
