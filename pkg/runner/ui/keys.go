package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTable key.Binding
	PrevTable key.Binding
	Left      key.Binding
	Right     key.Binding
	Pin       key.Binding
	Hide      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Clear     key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTable: key.NewBinding(key.WithKeys("tab")),
		PrevTable: key.NewBinding(key.WithKeys("shift+tab")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Pin:       key.NewBinding(key.WithKeys("p")),
		Hide:      key.NewBinding(key.WithKeys("h")),
		MoveLeft:  key.NewBinding(key.WithKeys("[")),
		MoveRight: key.NewBinding(key.WithKeys("]")),
		Clear:     key.NewBinding(key.WithKeys("c")),
		Refresh:   key.NewBinding(key.WithKeys("R")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}
