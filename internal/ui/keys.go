package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the global keybindings for the application
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Prev key.Binding
	Next key.Binding

	// Field actions
	Edit   key.Binding
	Add    key.Binding
	Remove key.Binding
	Toggle key.Binding

	// Document
	Generate key.Binding
	Open     key.Binding

	// Power user
	Help        key.Binding
	AccentCycle key.Binding

	// General
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "campo acima"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "campo abaixo"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "item anterior"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "próximo item"),
		),

		// Field actions
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "editar"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "adicionar"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remover"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "concluir marco"),
		),

		// Document
		Generate: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "gerar documento"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "abrir documento"),
		),

		// Power user
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ajuda"),
		),
		AccentCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "cor"),
		),

		// General
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "sair"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirmar"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("escape"),
			key.WithHelp("esc", "cancelar"),
		),
	}
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Edit, k.Add, k.Remove, k.Toggle},
		{k.Generate, k.Open, k.AccentCycle},
		{k.Help, k.Quit},
	}
}
