package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	esc       key.Binding
	copy      key.Binding
	reload    key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	copy:      key.NewBinding(key.WithKeys("c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
