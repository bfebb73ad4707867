// Package tracklist содержит модель списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-tunes/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// nameWidth максимальная ширина имени трека в строке списка
const nameWidth = 60

// trackItem реализует интерфейс list.Item для трека.
// index хранит позицию в плейлисте, чтобы выбор не зависел от фильтра.
type trackItem struct {
	index int
	name  string
}

func (i trackItem) FilterValue() string {
	return i.name
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%3d. %s", i.index+1, utils.TruncateString(i.name, nameWidth))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель списка треков
type Model struct {
	list list.Model
}

// NewModel создает пустой список треков
func NewModel() *Model {
	l := list.New(nil, trackItemDelegate{}, 0, 0)
	l.Title = "Плейлист"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{list: l}
}

// SetNames заменяет элементы списка, сохраняя позицию курсора
func (m *Model) SetNames(names []string) {
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = trackItem{index: i, name: name}
	}
	cursor := m.list.Index()
	m.list.SetItems(items)
	if cursor < len(items) {
		m.list.Select(cursor)
	}
}

// Len возвращает количество элементов списка
func (m *Model) Len() int {
	return len(m.list.Items())
}

// SelectedIndex возвращает позицию выбранного трека в плейлисте или -1
func (m *Model) SelectedIndex() int {
	item, ok := m.list.SelectedItem().(trackItem)
	if !ok {
		return -1
	}
	return item.index
}

// Select перемещает курсор на трек с указанной позицией
func (m *Model) Select(index int) {
	m.list.Select(index)
}

// Filtering возвращает true, пока пользователь вводит фильтр
func (m *Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SetSize задает размеры списка
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update передает сообщения списку (навигация, фильтр)
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	return m.list.View()
}
