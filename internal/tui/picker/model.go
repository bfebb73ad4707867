// Package picker содержит экран выбора аудиофайлов для добавления в плейлист
package picker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// DoneMsg отправляется по завершении выбора. Paths пуст при отмене.
type DoneMsg struct {
	Paths []string
}

// Model представляет экран выбора нескольких файлов
type Model struct {
	filepicker filepicker.Model
	extensions []string
	selected   []string
}

// NewModel создает экран выбора, ограниченный расширениями extensions
func NewModel(extensions []string, startDir string) *Model {
	fp := filepicker.New()
	fp.AllowedTypes = extensions
	fp.CurrentDirectory = startDir
	fp.AutoHeight = true

	return &Model{
		filepicker: fp,
		extensions: extensions,
	}
}

// Init запускает чтение стартовой директории
func (m *Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

// Selected возвращает уже выбранные файлы
func (m *Model) Selected() []string {
	out := make([]string, len(m.selected))
	copy(out, m.selected)
	return out
}

// Update обрабатывает сообщения
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			// Завершаем выбор
			paths := m.Selected()
			return m, func() tea.Msg {
				return DoneMsg{Paths: paths}
			}
		case "q":
			// Отмена выбора
			return m, func() tea.Msg {
				return DoneMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		m.toggle(path)
	}

	return m, cmd
}

// toggle добавляет файл в выбор или убирает его при повторном выборе
func (m *Model) toggle(path string) {
	for i, p := range m.selected {
		if p == path {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return
		}
	}
	m.selected = append(m.selected, path)
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Выберите файлы (%s)", strings.Join(m.extensions, " "))))
	b.WriteString("\n")
	b.WriteString(m.filepicker.CurrentDirectory)
	b.WriteString("\n\n")
	b.WriteString(m.filepicker.View())
	b.WriteString("\n")

	if len(m.selected) > 0 {
		b.WriteString(fmt.Sprintf("\nВыбрано: %d\n", len(m.selected)))
		for _, p := range m.selected {
			b.WriteString(selectedStyle.Render("  ✓ " + filepath.Base(p)))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("Enter: выбрать/снять • Tab: добавить выбранные • q: отмена"))
	return b.String()
}
