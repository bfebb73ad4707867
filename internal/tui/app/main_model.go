// Package app содержит основную логику TUI приложения
package app

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tunes/internal/controller"
	"github.com/hazadus/go-tunes/internal/tui/nowplaying"
	"github.com/hazadus/go-tunes/internal/tui/picker"
	"github.com/hazadus/go-tunes/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// PlaylistScreen - экран плейлиста с панелью управления
	PlaylistScreen ScreenType = iota
	// PickerScreen - экран выбора файлов
	PickerScreen
)

// VolumeStep шаг изменения громкости клавишами
const VolumeStep = 5

var (
	windowStyle = lipgloss.NewStyle().Padding(1, 2)

	warningStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ffaf00")).
			Padding(1, 3)

	warningTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaf00"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginTop(1)
)

// Actions описывает операции контроллера, вызываемые клавишами
type Actions interface {
	Previous() error
	PlayOrPause() error
	PlaySelected() error
	Stop()
	Next() error
	AddFiles()
	SetVolume(level int)
	State() controller.State
}

// MainModel представляет главную модель TUI и реализует controller.View
type MainModel struct {
	actions        Actions
	keys           keyMap
	help           help.Model
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	nowPlaying     *nowplaying.Model
	pickerModel    *picker.Model
	pickerDone     func(paths []string)
	pendingCmd     tea.Cmd
	warnings       []string
	size           tea.WindowSizeMsg
	startDir       string
}

var _ controller.View = (*MainModel)(nil)

// NewMainModel создает главную модель с начальной громкостью volume
func NewMainModel(volume int) *MainModel {
	startDir, err := os.UserHomeDir()
	if err != nil {
		startDir = "."
	}

	return &MainModel{
		keys:           newKeyMap(),
		help:           help.New(),
		currentScreen:  PlaylistScreen,
		tracklistModel: tracklist.NewModel(),
		nowPlaying:     nowplaying.NewModel(volume),
		startDir:       startDir,
	}
}

// SetActions подключает контроллер
func (m *MainModel) SetActions(actions Actions) {
	m.actions = actions
}

// SetStartDir задает директорию, с которой открывается выбор файлов
func (m *MainModel) SetStartDir(dir string) {
	m.startDir = dir
}

// DisplayTrackList показывает имена треков по порядку
func (m *MainModel) DisplayTrackList(names []string) {
	m.tracklistModel.SetNames(names)
}

// SelectedIndex возвращает выбранный в списке трек или -1
func (m *MainModel) SelectedIndex() int {
	return m.tracklistModel.SelectedIndex()
}

// SetNowPlaying обновляет надпись текущего трека
func (m *MainModel) SetNowPlaying(name string, playing bool) {
	m.nowPlaying.SetTrack(name, playing)
}

// SetTransportIcon переключает иконку воспроизведения/паузы
func (m *MainModel) SetTransportIcon(playing bool) {
	m.nowPlaying.SetPlaying(playing)
}

// PromptFileSelection открывает экран выбора файлов
func (m *MainModel) PromptFileSelection(extensions []string, done func(paths []string)) {
	m.pickerModel = picker.NewModel(extensions, m.startDir)
	m.pickerDone = done
	m.currentScreen = PickerScreen

	cmds := []tea.Cmd{m.pickerModel.Init()}
	if m.size.Width > 0 {
		var sizeCmd tea.Cmd
		m.pickerModel, sizeCmd = m.pickerModel.Update(m.size)
		cmds = append(cmds, sizeCmd)
	}
	m.pendingCmd = tea.Batch(cmds...)
}

// ShowWarning ставит предупреждение в очередь модальных окон
func (m *MainModel) ShowWarning(message string) {
	m.warnings = append(m.warnings, message)
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
		m.resize()
		if m.pickerModel != nil {
			var cmd tea.Cmd
			m.pickerModel, cmd = m.pickerModel.Update(msg)
			return m, cmd
		}
		return m, nil

	case picker.DoneMsg:
		// Возвращаемся к плейлисту и отдаем выбор контроллеру
		done := m.pickerDone
		m.currentScreen = PlaylistScreen
		m.pickerModel = nil
		m.pickerDone = nil
		if done != nil {
			done(msg.Paths)
		}
		return m, m.takePendingCmd()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		// Любая клавиша закрывает текущее предупреждение
		if len(m.warnings) > 0 {
			m.warnings = m.warnings[1:]
			return m, nil
		}

		if m.currentScreen == PlaylistScreen && !m.tracklistModel.Filtering() {
			if handled, model, cmd := m.handleTransportKey(msg); handled {
				return model, cmd
			}
		}
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case PlaylistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	case PickerScreen:
		if m.pickerModel != nil {
			m.pickerModel, cmd = m.pickerModel.Update(msg)
		}
	}
	return m, cmd
}

// handleTransportKey переводит клавиши плейлиста в команды контроллера
func (m *MainModel) handleTransportKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.actions == nil {
		return false, m, nil
	}

	// Ошибки уже показаны контроллером через ShowWarning
	switch {
	case key.Matches(msg, m.keys.Quit):
		model, cmd := m.quit()
		return true, model, cmd
	case key.Matches(msg, m.keys.Previous):
		_ = m.actions.Previous()
	case key.Matches(msg, m.keys.Next):
		_ = m.actions.Next()
	case key.Matches(msg, m.keys.PlayPause):
		_ = m.actions.PlayOrPause()
	case key.Matches(msg, m.keys.PlaySelected):
		_ = m.actions.PlaySelected()
	case key.Matches(msg, m.keys.Stop):
		m.actions.Stop()
	case key.Matches(msg, m.keys.Add):
		m.actions.AddFiles()
	case key.Matches(msg, m.keys.VolumeUp):
		m.changeVolume(VolumeStep)
	case key.Matches(msg, m.keys.VolumeDown):
		m.changeVolume(-VolumeStep)
	default:
		return false, m, nil
	}
	return true, m, m.takePendingCmd()
}

func (m *MainModel) changeVolume(delta int) {
	m.actions.SetVolume(m.actions.State().Volume + delta)
	m.nowPlaying.SetVolume(m.actions.State().Volume)
}

func (m *MainModel) quit() (tea.Model, tea.Cmd) {
	if m.actions != nil {
		m.actions.Stop()
	}
	return m, tea.Quit
}

func (m *MainModel) takePendingCmd() tea.Cmd {
	cmd := m.pendingCmd
	m.pendingCmd = nil
	return cmd
}

// resize раздает размеры окна дочерним моделям
func (m *MainModel) resize() {
	width := m.size.Width - 4
	m.help.Width = width
	m.nowPlaying.SetWidth(width)
	panelHeight := lipgloss.Height(m.nowPlaying.View())
	m.tracklistModel.SetSize(width, max(m.size.Height-panelHeight-6, 3))
}

// View отображает интерфейс
func (m *MainModel) View() string {
	if len(m.warnings) > 0 {
		return windowStyle.Render(warningStyle.Render(
			warningTitleStyle.Render("⚠ Предупреждение") + "\n\n" + m.warnings[0] +
				"\n\n" + helpStyle.Render("Нажмите любую клавишу"),
		))
	}

	switch m.currentScreen {
	case PlaylistScreen:
		return windowStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.nowPlaying.View(),
			"",
			m.tracklistModel.View(),
			helpStyle.Render(m.help.View(m.keys)),
		))

	case PickerScreen:
		if m.pickerModel != nil {
			return windowStyle.Render(m.pickerModel.View())
		}
		return "Ошибка: модель выбора файлов не инициализирована"

	default:
		return "Неизвестный экран"
	}
}
