package live

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	ChooseA key.Binding
	ChooseB key.Binding
	Next    key.Binding
	Prev    key.Binding
	Jump    key.Binding
	Finish  key.Binding
	Retry   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "naik")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "turun")),
		ChooseA: key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a", "pilih A")),
		ChooseB: key.NewBinding(key.WithKeys("b", "right"), key.WithHelp("b", "pilih B")),
		Next:    key.NewBinding(key.WithKeys("n", "tab"), key.WithHelp("n", "halaman berikut")),
		Prev:    key.NewBinding(key.WithKeys("p", "shift+tab"), key.WithHelp("p", "halaman sebelumnya")),
		Jump:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "soal belum dijawab")),
		Finish:  key.NewBinding(key.WithKeys("f", "ctrl+s"), key.WithHelp("f", "selesai")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "muat ulang")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "bantuan")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "keluar")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ChooseA, k.ChooseB, k.Next, k.Prev, k.Finish, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ChooseA, k.ChooseB},
		{k.Next, k.Prev, k.Jump},
		{k.Finish, k.Retry, k.Help, k.Quit},
	}
}
