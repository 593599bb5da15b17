package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tombs/internal/game"
)

// IntentForKey maps a key to a player intent: WASD steps, the arrow keys swing.
func IntentForKey(ev *tcell.EventKey) (game.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.AttackIntent(0, -1), true
	case tcell.KeyDown:
		return game.AttackIntent(0, 1), true
	case tcell.KeyLeft:
		return game.AttackIntent(-1, 0), true
	case tcell.KeyRight:
		return game.AttackIntent(1, 0), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.MoveIntent(0, -1), true
		case 's', 'S':
			return game.MoveIntent(0, 1), true
		case 'a', 'A':
			return game.MoveIntent(-1, 0), true
		case 'd', 'D':
			return game.MoveIntent(1, 0), true
		}
	}
	return game.Intent{}, false
}

// IsQuitKey reports whether the key ends the session.
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
