// Package nowplaying содержит панель текущего трека, кнопок и громкости для TUI
package nowplaying

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Placeholder надпись, когда трек не выбран
const Placeholder = "Название трека"

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("#303030")).
			Padding(0, 1).
			Align(lipgloss.Center)

	activeLabelStyle   = labelStyle.Foreground(lipgloss.Color("#ffffff"))
	inactiveLabelStyle = labelStyle.Foreground(lipgloss.Color("#808080"))

	buttonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#303030")).
			Padding(0, 1).
			MarginRight(1)

	volumeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			MarginTop(1)
)

// Model представляет панель "сейчас играет"
type Model struct {
	name      string
	highlight bool
	playing   bool
	volume    int
	volumeBar progress.Model
	width     int
}

// NewModel создает панель с указанной громкостью
func NewModel(volume int) *Model {
	bar := progress.New(
		progress.WithSolidFill("#ffffff"),
		progress.WithoutPercentage(),
	)
	bar.Width = 40

	return &Model{
		volume:    volume,
		volumeBar: bar,
		width:     60,
	}
}

// SetTrack обновляет надпись и ее выделение. Пустое имя сбрасывает надпись.
func (m *Model) SetTrack(name string, highlight bool) {
	m.name = name
	m.highlight = highlight
}

// SetPlaying переключает иконку воспроизведения/паузы
func (m *Model) SetPlaying(playing bool) {
	m.playing = playing
}

// SetVolume обновляет положение ползунка громкости
func (m *Model) SetVolume(volume int) {
	m.volume = volume
}

// Volume возвращает положение ползунка громкости
func (m *Model) Volume() int {
	return m.volume
}

// Label возвращает текст надписи "сейчас играет"
func (m *Model) Label() string {
	if m.name == "" {
		return Placeholder
	}
	return m.name
}

// Highlighted возвращает true, если надпись выделена
func (m *Model) Highlighted() bool {
	return m.highlight
}

// PlayIcon возвращает иконку кнопки воспроизведения
func (m *Model) PlayIcon() string {
	if m.playing {
		return "⏸"
	}
	return "▶"
}

// SetWidth задает ширину панели
func (m *Model) SetWidth(width int) {
	m.width = width
	m.volumeBar.Width = min(60, width-20)
	if m.volumeBar.Width < 10 {
		m.volumeBar.Width = 10
	}
}

// View отображает панель
func (m *Model) View() string {
	style := inactiveLabelStyle
	if m.highlight {
		style = activeLabelStyle
	}
	label := style.Width(max(m.width-4, len(Placeholder))).Render(m.Label())

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render("⏮ ["),
		buttonStyle.Render(m.PlayIcon()+" space"),
		buttonStyle.Render("⏹ s"),
		buttonStyle.Render("⏭ ]"),
		buttonStyle.Render("＋ a"),
	)

	volume := volumeStyle.Render(fmt.Sprintf("🔊 %s %3d%%",
		m.volumeBar.ViewAs(float64(m.volume)/100),
		m.volume))

	return lipgloss.JoinVertical(lipgloss.Left, label, "", buttons, volume)
}
