package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/MrJamesThe3rd/leaveatip/internal/tip"
)

const maxPresetShortcuts = 9

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Press  key.Binding
	Preset key.Binding
	Custom key.Binding
	Quit   key.Binding

	Submit key.Binding
	Close  key.Binding

	OK key.Binding

	ForceQuit key.Binding
}

func newKeyMap(presets int) keyMap {
	n := min(presets, maxPresetShortcuts)

	digits := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		digits = append(digits, fmt.Sprint(i))
	}

	preset := key.NewBinding(key.WithKeys(digits...), key.WithHelp(fmt.Sprintf("1-%d", n), "preset"))
	if n == 0 {
		preset.SetEnabled(false)
	}

	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→", "right")),
		Press:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Preset: preset,
		Custom: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "custom")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

		OK: key.NewBinding(key.WithKeys("enter", "esc", "o"), key.WithHelp("enter", "ok")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// screenKeys adapts the bindings of one screen to help.KeyMap.
type screenKeys []key.Binding

func (k screenKeys) ShortHelp() []key.Binding { return k }

func (k screenKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func (k keyMap) forScreen(s tip.Screen) screenKeys {
	switch s {
	case tip.ScreenCustomEntry:
		return screenKeys{k.Submit, k.Close}
	case tip.ScreenConfirming:
		return screenKeys{k.OK}
	}

	return screenKeys{k.Left, k.Right, k.Press, k.Preset, k.Custom, k.Quit}
}
