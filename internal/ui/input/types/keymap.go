package types

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"lampgrid/internal/config"
)

// KeyMap holds the normal-mode bindings. It satisfies help.KeyMap.
type KeyMap struct {
	SelectAll       key.Binding
	ClearSelection  key.Binding
	Toggle          key.Binding
	NewLamp         key.Binding
	Remove          key.Binding
	AddToGroup      key.Binding
	RemoveFromGroup key.Binding
	NewGroup        key.Binding
	RenameGroup     key.Binding
	DeleteGroup     key.Binding
	ToggleGroup     key.Binding
	CycleColor      key.Binding
	GroupUp         key.Binding
	GroupDown       key.Binding
	SelectGroup     key.Binding
	FocusGroup      key.Binding
	Help            key.Binding
	Quit            key.Binding
}

func binding(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(displayKey(keys), desc))
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "esc":
		return "Esc"
	}
	if rest, ok := strings.CutPrefix(k, "ctrl+"); ok {
		return "Ctrl+" + strings.ToUpper(rest)
	}
	return k
}

// NewKeyMap builds the bindings from the configured keys
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		SelectAll:       binding(cfg.SelectAll, "select all"),
		ClearSelection:  binding(cfg.ClearSelection, "clear selection"),
		Toggle:          binding(cfg.Toggle, "toggle lamps"),
		NewLamp:         binding(cfg.NewLamp, "new lamp"),
		Remove:          binding(cfg.Remove, "remove lamps"),
		AddToGroup:      binding(cfg.AddToGroup, "add to group"),
		RemoveFromGroup: binding(cfg.RemoveFromGroup, "remove from group"),
		NewGroup:        binding(cfg.NewGroup, "new group"),
		RenameGroup:     binding(cfg.RenameGroup, "rename group"),
		DeleteGroup:     binding(cfg.DeleteGroup, "delete groups"),
		ToggleGroup:     binding(cfg.ToggleGroup, "toggle groups"),
		CycleColor:      binding(cfg.CycleColor, "group color"),
		GroupUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "group up"),
		),
		GroupDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "group down"),
		),
		SelectGroup: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select group"),
		),
		FocusGroup: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select only group"),
		),
		Help: binding(cfg.Help, "help"),
		Quit: binding(cfg.Quit, "quit"),
	}
}

// ShortHelp is part of help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewLamp, k.Toggle, k.NewGroup, k.AddToGroup, k.Help, k.Quit}
}

// FullHelp is part of help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SelectAll, k.ClearSelection, k.NewLamp, k.Toggle, k.Remove},
		{k.AddToGroup, k.RemoveFromGroup, k.NewGroup, k.RenameGroup, k.DeleteGroup, k.ToggleGroup, k.CycleColor},
		{k.GroupUp, k.GroupDown, k.SelectGroup, k.FocusGroup, k.Help, k.Quit},
	}
}
