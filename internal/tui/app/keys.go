package app

import "github.com/charmbracelet/bubbles/key"

// keyMap клавиши экрана плейлиста
type keyMap struct {
	Previous     key.Binding
	Next         key.Binding
	PlayPause    key.Binding
	PlaySelected key.Binding
	Stop         key.Binding
	Add          key.Binding
	VolumeUp     key.Binding
	VolumeDown   key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Previous:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "пред.")),
		Next:         key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "след.")),
		PlayPause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("пробел", "пауза")),
		PlaySelected: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "играть выбранный")),
		Stop:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "стоп")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "добавить")),
		VolumeUp:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "громче")),
		VolumeDown:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "тише")),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "выход")),
	}
}

// ShortHelp реализует help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.PlayPause, k.PlaySelected, k.Stop, k.Add, k.VolumeUp, k.VolumeDown, k.Quit}
}

// FullHelp реализует help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.PlayPause, k.PlaySelected},
		{k.Stop, k.Add, k.VolumeUp, k.VolumeDown, k.Quit},
	}
}
