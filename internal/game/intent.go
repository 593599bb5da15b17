package game

import "github.com/samdwyer/tombs/internal/entity"

// Action is what an intent asks the player to do.
type Action int

const (
	ActionMove Action = iota
	ActionAttack
)

// Intent is one abstract player command, decoupled from any input device.
type Intent struct {
	Action Action
	DX, DY int
}

// MoveIntent steps the player by (dx, dy).
func MoveIntent(dx, dy int) Intent {
	return Intent{Action: ActionMove, DX: dx, DY: dy}
}

// AttackIntent swings at the cell (dx, dy) from the player.
func AttackIntent(dx, dy int) Intent {
	return Intent{Action: ActionAttack, DX: dx, DY: dy}
}

// HandleIntent applies a player command. Commands are ignored once the player
// is dead, and a new swing does not replace one that is still pending.
// Reports whether the intent was accepted.
func (g *Game) HandleIntent(in Intent) bool {
	player := g.Player()
	if !player.Alive {
		return false
	}

	switch in.Action {
	case ActionMove:
		return g.MoveBy(entity.PlayerID, in.DX, in.DY)
	case ActionAttack:
		if player.Attacking != nil {
			return false
		}
		player.StartAttacking(in.DX, in.DY)
		return true
	}
	return false
}
