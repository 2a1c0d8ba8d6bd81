package cli

import "github.com/charmbracelet/bubbles/key"

// gameKeys are the bindings shown in the hint bar. Update matches on
// key strings directly; these exist for help text.
type gameKeys struct {
	Start   key.Binding
	Move    key.Binding
	PickUp  key.Binding
	Drop    key.Binding
	PutBack key.Binding
	Quit    key.Binding
}

func defaultGameKeys() gameKeys {
	return gameKeys{
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/restart")),
		Move:    key.NewBinding(key.WithKeys("left", "right", "h", "l"), key.WithHelp("←/→", "select")),
		PickUp:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "pick up")),
		Drop:    key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "drop in bin")),
		PutBack: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "put back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp returns the hints relevant to the current phase.
func (k gameKeys) shortHelp(active, holding bool) []key.Binding {
	switch {
	case !active:
		return []key.Binding{k.Start, k.Quit}
	case holding:
		return []key.Binding{k.Drop, k.PutBack, k.Start, k.Quit}
	default:
		return []key.Binding{k.Move, k.PickUp, k.Start, k.Quit}
	}
}
