package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	reload    key.Binding
	search    key.Binding
	profile   key.Binding
	edit      key.Binding
	upload    key.Binding
	copyLink  key.Binding
	copyORCID key.Binding
	verify    key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevPage:  key.NewBinding(key.WithKeys("left", "b")),
	nextPage:  key.NewBinding(key.WithKeys("right", "n")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("l")),
	reload:    key.NewBinding(key.WithKeys("r")),
	search:    key.NewBinding(key.WithKeys("s", "/")),
	profile:   key.NewBinding(key.WithKeys("p")),
	edit:      key.NewBinding(key.WithKeys("e")),
	upload:    key.NewBinding(key.WithKeys("u")),
	copyLink:  key.NewBinding(key.WithKeys("c")),
	copyORCID: key.NewBinding(key.WithKeys("o")),
	verify:    key.NewBinding(key.WithKeys("t")),
}
