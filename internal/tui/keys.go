package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the TUI reacts to. Screens pick the subset
// they show in the footer through screenHelp.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Select key.Binding
	Back   key.Binding
	Next   key.Binding
	Search key.Binding
	Build  key.Binding

	Increment key.Binding
	Decrement key.Binding
	Edit      key.Binding
	Preset    key.Binding
	Reset     key.Binding
	Save      key.Binding
	Shuffle   key.Binding

	Delete key.Binding
	Lang   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next screen"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Build: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "build this"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+/→", "add"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "left", "h"),
			key.WithHelp("-/←", "remove"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "type value"),
		),
		Preset: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "preset"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reshuffle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Lang: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "language"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// screenHelp adapts a per-screen binding set to help.KeyMap.
type screenHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (s screenHelp) ShortHelp() []key.Binding  { return s.short }
func (s screenHelp) FullHelp() [][]key.Binding { return s.full }

// helpFor returns the bindings shown in the footer for a screen.
func (k keyMap) helpFor(s Screen) screenHelp {
	global := []key.Binding{k.Next, k.Lang, k.Help, k.Quit}

	switch s {
	case ScreenDetail:
		return screenHelp{
			short: []key.Binding{k.Build, k.Back, k.Quit},
			full:  [][]key.Binding{{k.Build, k.Back}, global},
		}
	case ScreenBuilder:
		return screenHelp{
			short: []key.Binding{k.Up, k.Increment, k.Decrement, k.Preset, k.Save, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Increment, k.Decrement, k.Edit},
				{k.Preset, k.Reset, k.Shuffle, k.Save},
				global,
			},
		}
	case ScreenSaved:
		return screenHelp{
			short: []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Help},
			full:  [][]key.Binding{{k.Up, k.Down, k.Select, k.Delete}, global},
		}
	default:
		return screenHelp{
			short: []key.Binding{k.Up, k.Down, k.Select, k.Search, k.Build, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Left, k.Right},
				{k.Select, k.Search, k.Build},
				global,
			},
		}
	}
}
