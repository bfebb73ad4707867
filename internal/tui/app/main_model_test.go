package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-tunes/internal/controller"
	"github.com/hazadus/go-tunes/internal/playlist"
	"github.com/hazadus/go-tunes/internal/tui/picker"
)

// nopEngine принимает все команды и ничего не воспроизводит
type nopEngine struct {
	loads []string
}

func (e *nopEngine) Init() error            { return nil }
func (e *nopEngine) Load(path string) error { e.loads = append(e.loads, path); return nil }
func (e *nopEngine) Play() error            { return nil }
func (e *nopEngine) Pause()                 {}
func (e *nopEngine) Resume()                {}
func (e *nopEngine) Stop()                  {}
func (e *nopEngine) SetVolume(gain float64) {}

// newTestModel создает модель с настоящим контроллером над треками names
func newTestModel(t *testing.T, names ...string) (*MainModel, *controller.Controller, *nopEngine) {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatalf("Failed to create track: %v", err)
		}
	}

	store := playlist.NewStore(dir, []string{".mp3"}, nil)
	if _, err := store.Scan(); err != nil {
		t.Fatalf("Failed to scan: %v", err)
	}

	model := NewMainModel(controller.DefaultVolume)
	model.SetStartDir(dir)
	engine := &nopEngine{}
	ctrl := controller.New(store, engine, model, nil, []string{".mp3", ".wav"})
	model.SetActions(ctrl)
	if err := ctrl.Start(); err != nil {
		t.Fatalf("Failed to start controller: %v", err)
	}

	model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model, ctrl, engine
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(model *MainModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = model.Update(keyMsg(k))
	}
	return cmd
}

func TestNewMainModel(t *testing.T) {
	model, ctrl, _ := newTestModel(t, "a.mp3", "b.mp3")

	if model.currentScreen != PlaylistScreen {
		t.Errorf("Expected initial screen to be PlaylistScreen, got %v", model.currentScreen)
	}
	if model.tracklistModel.Len() != 2 {
		t.Errorf("Expected 2 tracks in list, got %d", model.tracklistModel.Len())
	}
	if model.nowPlaying.Label() != "Название трека" {
		t.Errorf("Expected placeholder label, got %q", model.nowPlaying.Label())
	}
	if ctrl.State().Current != "" {
		t.Errorf("Expected no current track, got %q", ctrl.State().Current)
	}
}

func TestTransportKeys(t *testing.T) {
	model, ctrl, engine := newTestModel(t, "a.mp3", "b.mp3", "c.mp3")

	press(model, "]")
	if got := filepath.Base(ctrl.State().Current); got != "a.mp3" {
		t.Fatalf("Expected a.mp3 after next, got %q", got)
	}
	if model.nowPlaying.Label() != "a.mp3" || !model.nowPlaying.Highlighted() {
		t.Errorf("Expected highlighted a.mp3, got %q (%v)", model.nowPlaying.Label(), model.nowPlaying.Highlighted())
	}

	press(model, "[")
	if got := filepath.Base(ctrl.State().Current); got != "c.mp3" {
		t.Errorf("Expected c.mp3 after previous, got %q", got)
	}

	press(model, " ")
	if ctrl.State().Playing {
		t.Error("Expected pause after space")
	}
	if model.nowPlaying.PlayIcon() != "▶" {
		t.Errorf("Expected play icon while paused, got %q", model.nowPlaying.PlayIcon())
	}

	press(model, "s")
	if ctrl.State().Current != "" || model.nowPlaying.Label() != "Название трека" {
		t.Errorf("Expected reset after stop, got %q / %q", ctrl.State().Current, model.nowPlaying.Label())
	}

	// Enter запускает трек под курсором
	model.tracklistModel.Select(1)
	press(model, "enter")
	if got := filepath.Base(ctrl.State().Current); got != "b.mp3" {
		t.Errorf("Expected b.mp3 after enter, got %q", got)
	}
	if len(engine.loads) != 3 {
		t.Errorf("Expected 3 loads, got %d", len(engine.loads))
	}
}

func TestVolumeKeys(t *testing.T) {
	model, ctrl, _ := newTestModel(t, "a.mp3")

	press(model, "-", "-")
	if ctrl.State().Volume != 90 {
		t.Errorf("Expected volume 90, got %d", ctrl.State().Volume)
	}
	if model.nowPlaying.Volume() != 90 {
		t.Errorf("Expected slider at 90, got %d", model.nowPlaying.Volume())
	}

	press(model, "+", "+", "+")
	if ctrl.State().Volume != 100 {
		t.Errorf("Expected volume clamped to 100, got %d", ctrl.State().Volume)
	}
}

func TestWarningsQueue(t *testing.T) {
	model, _, _ := newTestModel(t)

	// Пустой плейлист дает предупреждение
	press(model, "]")
	model.ShowWarning("Второе")

	if len(model.warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %d", len(model.warnings))
	}
	if !strings.Contains(model.View(), "Плейлист пуст") {
		t.Error("Expected first warning in view")
	}

	// Клавиша закрывает предупреждение и не доходит до контроллера
	press(model, "q")
	if !strings.Contains(model.View(), "Второе") {
		t.Error("Expected second warning in view")
	}
	press(model, "x")
	if len(model.warnings) != 0 {
		t.Errorf("Expected no warnings, got %d", len(model.warnings))
	}
}

func TestAddFilesFlow(t *testing.T) {
	model, ctrl, _ := newTestModel(t, "a.mp3")

	src := filepath.Join(t.TempDir(), "new.wav")
	if err := os.WriteFile(src, []byte("wav"), 0644); err != nil {
		t.Fatalf("Failed to create source: %v", err)
	}

	cmd := press(model, "a")
	if model.currentScreen != PickerScreen {
		t.Fatalf("Expected PickerScreen after a, got %v", model.currentScreen)
	}
	if cmd == nil {
		t.Error("Expected picker init command")
	}
	if model.View() == "" {
		t.Error("Expected non-empty picker view")
	}

	model.Update(picker.DoneMsg{Paths: []string{src}})
	if model.currentScreen != PlaylistScreen {
		t.Errorf("Expected PlaylistScreen after done, got %v", model.currentScreen)
	}
	if model.tracklistModel.Len() != 2 {
		t.Errorf("Expected 2 tracks after add, got %d", model.tracklistModel.Len())
	}
	if ctrl.State().Current != "" {
		t.Error("Expected add not to start playback")
	}
}

func TestPickerCancel(t *testing.T) {
	model, _, _ := newTestModel(t, "a.mp3")

	press(model, "a")
	model.Update(picker.DoneMsg{})

	if model.currentScreen != PlaylistScreen {
		t.Errorf("Expected PlaylistScreen after cancel, got %v", model.currentScreen)
	}
	if model.tracklistModel.Len() != 1 {
		t.Errorf("Expected 1 track after cancel, got %d", model.tracklistModel.Len())
	}
}

func TestQuitKeys(t *testing.T) {
	model, ctrl, _ := newTestModel(t, "a.mp3")

	press(model, "]")
	cmd := press(model, "q")
	if cmd == nil {
		t.Fatal("Expected tea.Quit command after q")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected QuitMsg")
	}
	if ctrl.State().Current != "" {
		t.Error("Expected stop on quit")
	}

	if cmd := press(model, "ctrl+c"); cmd == nil {
		t.Error("Expected tea.Quit command after Ctrl+C")
	}
}

func TestMainModelView(t *testing.T) {
	model, _, _ := newTestModel(t, "a.mp3")

	view := model.View()
	if !strings.Contains(view, "a.mp3") {
		t.Error("Expected track name in playlist view")
	}

	model.currentScreen = ScreenType(999)
	if view := model.View(); view != "Неизвестный экран" {
		t.Errorf("Expected 'Неизвестный экран' for unknown screen, got '%s'", view)
	}
}
