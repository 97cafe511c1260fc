package input

import "github.com/gdamore/tcell/v2"

// Action is a game-level control derived from a key event
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Plain rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable binds arrows, a/d and h/l for thrust; Esc, q and Ctrl-C close
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionLeft,
			'h': ActionLeft,
			'd': ActionRight,
			'l': ActionRight,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
